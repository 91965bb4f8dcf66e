package math

import "math"

// Pi is math.Pi as float32.
const Pi = float32(math.Pi)

// MapRange remaps value from [inMin, inMax] onto [outMin, outMax].
//
// The mapping is affine and unclamped, so values outside the input interval
// extrapolate linearly. inMin must differ from inMax; the result is not finite
// otherwise.
func MapRange(value, inMin, inMax, outMin, outMax float32) float32 {
	v, a, b := float64(value), float64(inMin), float64(inMax)
	c, d := float64(outMin), float64(outMax)
	return float32(c + (v-a)*(d-c)/(b-a))
}

// Approach moves current toward target by 1/rate of the remaining distance.
//
// It is a fixed-ratio exponential filter applied once per frame: with a
// constant target the error after k calls is (1 - 1/rate)^k of the original.
// A rate of 1 snaps to target. Rates below 1 overshoot.
func Approach(current, target, rate float32) float32 {
	c := float64(current)
	return float32(c + (float64(target)-c)/float64(rate))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sin is math.Sin for float32.
func Sin(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

// Cos is math.Cos for float32.
func Cos(v float32) float32 {
	return float32(math.Cos(float64(v)))
}
