// Package percent converts between progress ratios, parts-per-million refund
// fractions and the contract's basis-point unit.
package percent

import (
	"fmt"
	"math"
)

const (
	// MaxPPM is 100% in parts-per-million.
	MaxPPM = 1_000_000
	// MaxBps is 100% in basis points, the contract's native unit.
	MaxBps = 10_000
)

// ValidatePPM rejects values outside [0, MaxPPM].
func ValidatePPM(ppm int64) error {
	if ppm < 0 || ppm > MaxPPM {
		return fmt.Errorf("percent_ppm %d out of range [0, %d]", ppm, MaxPPM)
	}
	return nil
}

// RatioToPPM clamps ratio to [0.0, 1.0] and converts it to parts-per-million,
// rounded to the nearest integer.
func RatioToPPM(ratio float64) int64 {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int64(math.Round(ratio * MaxPPM))
}

// PPMToBps converts parts-per-million to basis points: bps = round(ppm/100).
// The conversion drops the two least significant decimal digits of ppm; that
// loss is accepted because the contract only stores basis points.
func PPMToBps(ppm int64) (int64, error) {
	if err := ValidatePPM(ppm); err != nil {
		return 0, err
	}
	return (ppm + 50) / 100, nil
}

// BpsToPPM converts basis points back to parts-per-million.
func BpsToPPM(bps int64) int64 {
	return bps * 100
}
