package scene

import "math/rand/v2"

// NewRand returns the generator that decides bonus drops. Equal seeds
// replay equal games.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
