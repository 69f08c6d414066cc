package search

import "math/rand"

// Deterministic RNG helpers: every randomized decision in this package
// (roulette bucket shuffling) must derive from an explicit seed, never
// from wall-clock or global state.

// rngForDepth returns a fresh deterministic RNG stream for the roulette
// shuffle at the given search depth, seeded from
// (tuning.Seed XOR 0xC0FFEE XOR depth).
func rngForDepth(seed int64, depth int) *rand.Rand {
	s := seed ^ 0xC0FFEE ^ int64(depth)
	return rand.New(rand.NewSource(s))
}
