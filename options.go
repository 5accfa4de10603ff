package qsim

import "math/rand/v2"

// StateVectorOption is a function type for configuring state vectors
type StateVectorOption func(*StateVector)

// WithRand sets the random source used for measurement draws. Passing the same
// source to several state vectors makes them share one stream.
func WithRand(rng *rand.Rand) StateVectorOption {
	return func(sv *StateVector) {
		if rng != nil {
			sv.rng = rng
		}
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
