package testutil

import "math/rand"

// LinSpace returns n evenly spaced points from lo to hi inclusive.
// For n == 1 it returns []float64{lo}.
func LinSpace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// DeterministicIncreasing generates a strictly increasing sequence of length
// n starting at start, with random steps in [minStep, maxStep) drawn from a
// fixed seed. minStep must be positive.
func DeterministicIncreasing(seed int64, start, minStep, maxStep float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	v := start
	for i := range out {
		out[i] = v
		v += minStep + rng.Float64()*(maxStep-minStep)
	}
	return out
}
