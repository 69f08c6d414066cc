package search

import (
	"math/rand"

	"github.com/ABakker30/ballpuzzle3/bitset"
)

// zobrist holds the per-cell and per-depth 64-bit keys used to hash
// (occupancy, cursor) pairs.
type zobrist struct {
	occKeys   []uint64
	depthKeys []uint64
}

func newZobrist(seed int64, n, depthCap int) zobrist {
	var goldenRatio64 uint64 = 0x9E3779B97F4A7C15
	r := rand.New(rand.NewSource(seed ^ int64(goldenRatio64)))
	occKeys := make([]uint64, n)
	for i := range occKeys {
		occKeys[i] = r.Uint64()
	}
	depthKeys := make([]uint64, depthCap+1)
	for i := range depthKeys {
		depthKeys[i] = r.Uint64()
	}
	return zobrist{occKeys: occKeys, depthKeys: depthKeys}
}

// hash combines every set occupancy bit with the depth key for cursor.
func (z zobrist) hash(occ bitset.Set, cursor int) uint64 {
	var h uint64
	for i, ok := occ.NextSet(0); ok; i, ok = occ.NextSet(i + 1) {
		h ^= z.occKeys[i]
	}
	if cursor < len(z.depthKeys) {
		h ^= z.depthKeys[cursor]
	} else {
		h ^= uint64(cursor) * 11400714819323198485
	}
	return h
}

// transpositionTable is a bounded map from a Zobrist hash to the best
// (largest) cursor previously reached from that configuration. Trimming
// drops the oldest-inserted entries first; insertion order is the only
// recency signal required.
type transpositionTable struct {
	best         map[uint64]int
	insertOrder  []uint64
	maxSize      int
	trimKeepSize int
}

func newTranspositionTable(maxSize, trimKeepSize int) *transpositionTable {
	return &transpositionTable{
		best:         make(map[uint64]int),
		maxSize:      maxSize,
		trimKeepSize: trimKeepSize,
	}
}

// shouldPrune reports whether h has already been explored at least as deep
// as cursor.
func (tt *transpositionTable) shouldPrune(h uint64, cursor int) bool {
	prev, ok := tt.best[h]
	return ok && prev >= cursor
}

// record stores the larger of the existing value and cursor for h, trimming
// the table if it grows past maxSize.
func (tt *transpositionTable) record(h uint64, cursor int) {
	prev, exists := tt.best[h]
	if !exists {
		tt.insertOrder = append(tt.insertOrder, h)
		tt.best[h] = cursor
	} else if cursor > prev {
		tt.best[h] = cursor
	}

	if len(tt.best) > tt.maxSize {
		tt.trim()
	}
}

func (tt *transpositionTable) trim() {
	toDrop := len(tt.best) - tt.trimKeepSize
	consumed := 0
	for consumed < len(tt.insertOrder) && toDrop > 0 {
		k := tt.insertOrder[consumed]
		consumed++
		if _, ok := tt.best[k]; ok {
			delete(tt.best, k)
			toDrop--
		}
	}
	tt.insertOrder = tt.insertOrder[consumed:]
}

func (tt *transpositionTable) size() int { return len(tt.best) }
