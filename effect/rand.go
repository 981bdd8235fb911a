package effect

import "math/rand/v2"

// Rand is the source of every random draw made while generating particles.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
