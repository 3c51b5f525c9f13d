package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FirstNonFinite returns the index of the first NaN or infinite element of
// x, or -1 if every element is finite.
func FirstNonFinite(x []float64) int {
	for i, v := range x {
		if !IsFinite(v) {
			return i
		}
	}
	return -1
}

// FirstNonIncreasing returns the smallest i with x[i+1] <= x[i], or -1 if x
// is strictly increasing. NaN pairs count as non-increasing.
func FirstNonIncreasing(x []float64) int {
	for i := 0; i+1 < len(x); i++ {
		if !(x[i+1] > x[i]) {
			return i
		}
	}
	return -1
}
