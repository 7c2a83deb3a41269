// Package survival implements the survival mode: a player enduring an
// escalating stream of falling enemies.
package survival

import (
	"fmt"
	"math"
)

// Difficulty tuning.
const (
	difficultyRampSeconds = 30.0 // Seconds of survival per +1 multiplier
	difficultyStepSeconds = 10.0 // Stepped curve only changes on these boundaries
)

// Curve maps cumulative survival time in seconds to the difficulty multiplier.
// Implementations must be non-decreasing and never return less than 1.
type Curve func(seconds float64) float64

// Stepped raises the multiplier in discrete jumps every 10 seconds:
// 1 + (10*floor(t/10))/30. At 300s the multiplier is 11.
func Stepped(seconds float64) float64 {
	if seconds <= 0 {
		return 1
	}
	boundary := math.Floor(seconds/difficultyStepSeconds) * difficultyStepSeconds
	return 1 + boundary/difficultyRampSeconds
}

// Continuous raises the multiplier every step: 1 + t/30.
func Continuous(seconds float64) float64 {
	if seconds <= 0 {
		return 1
	}
	return 1 + seconds/difficultyRampSeconds
}

// CurveByName resolves a curve from configuration. Empty selects Stepped.
func CurveByName(name string) (Curve, error) {
	switch name {
	case "", "stepped":
		return Stepped, nil
	case "continuous":
		return Continuous, nil
	default:
		return nil, fmt.Errorf("unknown difficulty curve %q", name)
	}
}
