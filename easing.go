package sway

import "github.com/tanema/gween/ease"

// Easing reshapes a linear progress fraction in [0, 1] into an eased
// fraction. The output is not constrained to [0, 1]: curves that overshoot
// (elastic, back) return values outside the range and rely on the blend
// function to extrapolate or clamp as appropriate for its kind.
//
// The contract matches github.com/fogleman/ease, so its curves can be used
// directly:
//
//	d.Tween(set, 0.0, 10.0, 1.0, ease.OutElastic)
type Easing func(t float64) float64

// Linear returns the fraction unchanged.
func Linear(t float64) float64 { return t }

// EaseInOut is a quadratic ease-in-ease-out curve. It is the default
// easing used when a constructor receives a nil Easing.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return t * (4 - 2*t) - 1
}

// GweenEasing adapts a github.com/tanema/gween/ease curve to the Easing
// contract by evaluating it over a unit time span with begin 0 and change 1.
func GweenEasing(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
