package testutil

import "math/rand/v2"

// DeterministicVector returns n values uniformly drawn from [-scale, scale)
// with a fixed seed.
func DeterministicVector(seed uint64, n int, scale float64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * scale
	}
	return out
}

// Axis returns the n-dimensional unit vector along axis i. An i outside
// [0, n) yields all zeros.
func Axis(n, i int) []float64 {
	out := make([]float64, n)
	if i >= 0 && i < n {
		out[i] = 1
	}
	return out
}

// Filled returns n copies of value.
func Filled(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
