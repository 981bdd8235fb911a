package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 clamps v into [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v > 0 {
		return math.Min(v, 1)
	}
	return 0
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundInt rounds half away from zero.
func RoundInt(v float64) int {
	return int(math.Round(v))
}
