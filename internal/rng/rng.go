package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a Generator. A seed of zero returns a Crypto generator, any other
// seed returns a reproducible math/rand generator.
// The seeded generator is not safe for concurrent use.
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
