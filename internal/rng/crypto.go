package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand. It is safe for concurrent use.
type Crypto struct{}

// Intn returns a uniform random number in [0, n)
// Like math/rand, it panics if n <= 0
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
