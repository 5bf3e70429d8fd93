// Package signal provides deterministic transforms over per-epoch metric
// series: interpolation with easing, correlated noise injection, and
// constant offset.
package signal

import "fmt"

// Easing shapes interpolation velocity: a pure function mapping a
// normalized position in [0,1] to a progress fraction. Ease-in-out shapes
// keep endpoints fixed but may overshoot between them.
type Easing func(t float64) float64

// Easing names accepted by EasingByName.
const (
	EasingLinear     = "linear"
	EasingIn         = "ease-in"
	EasingOut        = "ease-out"
	EasingInOut      = "ease-in-out"
	EasingCubicInOut = "cubic-in-out"
)

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// QuadIn accelerates from zero velocity.
func QuadIn(t float64) float64 { return t * t }

// QuadOut decelerates to zero velocity.
func QuadOut(t float64) float64 { return t * (2 - t) }

// QuadInOut accelerates through the first half and decelerates through
// the second.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicInOut is a steeper ease-in-out.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// EasingByName resolves an easing function from its CLI/script name.
func EasingByName(name string) (Easing, error) {
	switch name {
	case EasingLinear, "":
		return Linear, nil
	case EasingIn:
		return QuadIn, nil
	case EasingOut:
		return QuadOut, nil
	case EasingInOut:
		return QuadInOut, nil
	case EasingCubicInOut:
		return CubicInOut, nil
	default:
		return nil, fmt.Errorf("unknown easing %q (must be %s, %s, %s, %s, or %s)",
			name, EasingLinear, EasingIn, EasingOut, EasingInOut, EasingCubicInOut)
	}
}
