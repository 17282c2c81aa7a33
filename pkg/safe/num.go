// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

// Int64 converts a big integer to int64 with range validation. Chain values
// are uint256; cached amounts are stored as int64 minor units, so anything
// outside that range is a data error rather than a silent truncation.
func Int64(v *big.Int) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil big integer")
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("value %s out of int64 range", v.String())
	}
	return v.Int64(), nil
}

// Uint64 converts a big integer to uint64 with range validation.
func Uint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil big integer")
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v.String())
	}
	return v.Uint64(), nil
}

// IntFromInt64 converts an int64 to int, guarding 32-bit platforms.
func IntFromInt64(v int64) (int, error) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}
