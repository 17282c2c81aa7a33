// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// NowUnix returns the current unix time in seconds. Services hold it as a
// field so readiness checks can be pinned in tests.
func NowUnix() int64 {
	return time.Now().Unix()
}

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
