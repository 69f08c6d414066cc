package search

import (
	"sort"

	"github.com/ABakker30/ballpuzzle3/fit"
	"github.com/ABakker30/ballpuzzle3/lattice"
)

// buildCandidates constructs, ranks, and caps the candidate placements for
// the piece at the current cursor.
func (s *State) buildCandidates(pieceID string) []candidate {
	anchorIdx, anchorDeg := selectAnchor(s.lattice, s.occ)

	if anchorIdx >= 0 {
		s.stats.AnchorDegreeHist[anchorDeg]++
	}

	inCorridor := anchorIdx >= 0 && isCorridor(anchorDeg, s.tuning.Deg2Corridor)
	s.inCorridor = inCorridor
	if inCorridor {
		s.branchCapCur = s.tuning.BranchCapTight
	} else {
		s.branchCapCur = s.tuning.BranchCapOpen
	}

	var anchorNeighbors map[int32]struct{}
	if anchorIdx >= 0 {
		ns := s.lattice.Neighbors(anchorIdx)
		anchorNeighbors = make(map[int32]struct{}, len(ns))
		for _, n := range ns {
			anchorNeighbors[n] = struct{}{}
		}
	}

	activeHole4 := s.tuning.Hole4
	if activeHole4 && s.tuning.Hole4Conditional {
		if !s.hole4Activated && emptiesMod4OK(s.lattice, s.occ) {
			s.hole4Activated = true
		}
		activeHole4 = s.hole4Activated
	}

	var raw []candidate
	consider := func(originIdx int, f fit.Fit) {
		s.stats.Considered++

		occAfter := s.occ.Clone()
		occAfter.Or(f.Mask)

		if wouldIsolate(s.lattice, occAfter, f.Covered) {
			s.stats.PrunedIsolated++
			return
		}
		if activeHole4 && !emptiesMod4OK(s.lattice, occAfter) {
			s.stats.PrunedCavity++
			return
		}

		e, be := exposureCounts(s.lattice, occAfter, f.Covered)
		l := leafEmpties(s.lattice, occAfter, f.Covered)
		s.stats.ExposureHist[e]++
		s.stats.BoundaryExposureHist[be]++
		s.stats.LeafHist[l]++

		weighted := s.tuning.ExposureWeight*float64(e) +
			s.tuning.BoundaryExposureWeight*float64(be) +
			s.tuning.LeafWeight*float64(l)

		dist := distScore(s.lattice, anchorIdx, anchorNeighbors, originIdx, f.Covered)

		raw = append(raw, candidate{
			originIdx:      originIdx,
			orientationIdx: f.OrientationIdx,
			mask:           f.Mask,
			covered:        f.Covered,
			weightedScore:  weighted,
			distScore:      dist,
		})
	}

	// Phase 1: cover the anchor.
	if anchorIdx >= 0 {
		for _, f := range s.fits.FitsAt(pieceID, anchorIdx) {
			if !s.occ.Intersects(f.Mask) {
				consider(anchorIdx, f)
			}
		}
	}

	// Phase 2: fallback — any unoccupied origin, only if phase 1 was empty.
	if len(raw) == 0 {
		s.stats.FallbackPiece[pieceID]++
		n := s.lattice.Len()
		for origin := 0; origin < n; origin++ {
			if s.occ.Test(origin) {
				continue
			}
			for _, f := range s.fits.FitsAt(pieceID, origin) {
				if !s.occ.Intersects(f.Mask) {
					consider(origin, f)
				}
			}
		}
	}

	return s.rankAndCap(pieceID, raw)
}

func distScore(l *lattice.Lattice, anchorIdx int, anchorNeighbors map[int32]struct{}, originIdx int, covered [4]int32) int {
	if anchorIdx < 0 {
		return 0
	}
	for _, c := range covered {
		if int(c) == anchorIdx {
			return -10
		}
	}
	for _, c := range covered {
		if _, ok := anchorNeighbors[c]; ok {
			return -5
		}
	}
	return lattice.ManhattanDistance(l.Cell(anchorIdx), l.Cell(originIdx))
}

// rankAndCap sorts candidates ascending by
// (weightedScore, distScore, tryCount, originIdx, orientationIdx), keeps the
// top branchCapCur, then optionally reshuffles within (score, tryCount)
// buckets when roulette is active and the search is not in a corridor.
func (s *State) rankAndCap(pieceID string, raw []candidate) []candidate {
	if len(raw) == 0 {
		s.stats.ChoiceCountHist[0]++
		return nil
	}

	for i := range raw {
		key := tryKey{pieceID: pieceID, originIdx: int32(raw[i].originIdx), oriIdx: int32(raw[i].orientationIdx)}
		raw[i].tryCount = s.tryCounts[key]
	}

	sort.Slice(raw, func(i, j int) bool {
		a, b := raw[i], raw[j]
		if a.weightedScore != b.weightedScore {
			return a.weightedScore < b.weightedScore
		}
		if a.distScore != b.distScore {
			return a.distScore < b.distScore
		}
		if a.tryCount != b.tryCount {
			return a.tryCount < b.tryCount
		}
		if a.originIdx != b.originIdx {
			return a.originIdx < b.originIdx
		}
		return a.orientationIdx < b.orientationIdx
	})

	k := s.branchCapCur
	if k <= 0 || k > len(raw) {
		k = len(raw)
	}
	top := raw[:k]

	var ordered []candidate
	if s.tuning.Roulette == RouletteLeastTried && !s.inCorridor {
		ordered = rouletteShuffle(top, s.tuning.Seed, s.cursor)
	} else {
		ordered = top
	}

	s.stats.ChoiceCountHist[len(ordered)]++
	return ordered
}

// bucketKey groups candidates for roulette shuffling. Grouping is by
// (weightedScore, tryCount) only — distScore already broke ties during
// ranking and has no further role in how buckets are formed.
type bucketKey struct {
	score    float64
	tryCount int
}

func rouletteShuffle(top []candidate, seed int64, depth int) []candidate {
	buckets := make(map[bucketKey][]candidate)
	var keys []bucketKey
	for _, c := range top {
		k := bucketKey{score: c.weightedScore, tryCount: c.tryCount}
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], c)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].score != keys[j].score {
			return keys[i].score < keys[j].score
		}
		return keys[i].tryCount < keys[j].tryCount
	})

	rng := rngForDepth(seed, depth)
	ordered := make([]candidate, 0, len(top))
	for _, k := range keys {
		bucket := buckets[k]
		rng.Shuffle(len(bucket), func(i, j int) { bucket[i], bucket[j] = bucket[j], bucket[i] })
		ordered = append(ordered, bucket...)
	}
	return ordered
}
