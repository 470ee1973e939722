package problemgen

import "math/rand/v2"

// Rand is the source of every random draw the builders make.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewSeededRand returns a deterministic Rand for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randInt returns a uniform int in [lo, hi].
func randInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// coin returns true with probability 0.5.
func coin(r Rand) bool {
	return r.IntN(2) == 0
}

// pick returns a uniformly chosen element of xs. xs must be non-empty.
func pick[T any](r Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// shuffle permutes xs in place (Fisher-Yates).
func shuffle[T any](r Rand, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
