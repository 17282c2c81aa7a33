package postgres

import (
	"context"
	"fmt"
	"time"
)

// FinishedChallengeExists reports whether an archive row exists for the
// challenge.
func (r *Repository) FinishedChallengeExists(ctx context.Context, contractAddress string, challengeID uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("finished_challenge_exists", err, start)
	}()

	const query = `
SELECT EXISTS (
	SELECT 1 FROM finished_challenges
	WHERE contract_address = $1 AND challenge_id = $2
)`

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, contractAddress, int64(challengeID)).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished challenge %d: %w", challengeID, err)
	}
	return exists, nil
}
