package driver

import (
	"math/rand"
	"sort"
)

// preferredOrder is the fixed preferred piece order openers are drawn
// from.
var preferredOrder = []string{
	"A", "C", "E", "G", "I", "J", "H", "F", "D", "B",
	"Y", "X", "W", "L", "K", "V", "U", "T", "N", "M",
	"S", "R", "Q", "P", "O",
}

// baseOrder intersects preferredOrder with the available piece ids, in
// preference order, then appends any remaining available ids in sorted
// order.
func baseOrder(available []string) []string {
	present := make(map[string]bool, len(available))
	for _, id := range available {
		present[id] = true
	}

	var order []string
	used := make(map[string]bool, len(available))
	for _, id := range preferredOrder {
		if present[id] {
			order = append(order, id)
			used[id] = true
		}
	}

	var extra []string
	for _, id := range available {
		if !used[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)
	return order
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style avalanche finalizer. Every randomized decision here
// (shuffle mode) must be reproducible from (seed, attempt index), never
// wall-clock entropy.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleStringsInPlace performs an in-place Fisher-Yates shuffle using
// rng.
func shuffleStringsInPlace(a []string, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// applyShuffle perturbs a copy of base per mode, seeded deterministically
// from (seed, attemptIndex). Only the "extra" suffix (ids absent from
// preferredOrder) is ever reshuffled in within-buckets mode, since every
// preferred id occupies its own singleton bucket.
func applyShuffle(base []string, mode ShuffleMode, seed int64, attemptIndex int) []string {
	order := append([]string(nil), base...)
	if mode == ShuffleNone {
		return order
	}

	rng := rand.New(rand.NewSource(deriveSeed(seed, uint64(attemptIndex))))
	switch mode {
	case ShuffleFull:
		shuffleStringsInPlace(order, rng)
	case ShuffleWithinBuckets:
		prefCount := 0
		prefSet := make(map[string]bool, len(preferredOrder))
		for _, id := range preferredOrder {
			prefSet[id] = true
		}
		for _, id := range order {
			if prefSet[id] {
				prefCount++
			}
		}
		shuffleStringsInPlace(order[prefCount:], rng)
	}
	return order
}

// rotateLeft rotates order left by n positions (opener rotation). n is
// reduced modulo len(order).
func rotateLeft(order []string, n int) []string {
	if len(order) == 0 {
		return order
	}
	n = n % len(order)
	if n < 0 {
		n += len(order)
	}
	if n == 0 {
		return order
	}
	out := make([]string, len(order))
	copy(out, order[n:])
	copy(out[len(order)-n:], order[:n])
	return out
}
