package search

import (
	"time"

	"github.com/ABakker30/ballpuzzle3/bitset"
	"github.com/ABakker30/ballpuzzle3/fit"
	"github.com/ABakker30/ballpuzzle3/lattice"
)

// State holds everything one DFS attempt needs: occupancy, the placement
// stack, the per-depth frontier, the transposition table, and statistics.
// A fresh State is built for every attempt by the driver package; the
// Lattice and fit.Table it references are shared and immutable.
type State struct {
	lattice *lattice.Lattice
	fits    *fit.Table
	tuning  Tuning

	cursor     int
	occ        bitset.Set
	placements []Placement
	frontier   [][]candidate // frontier[d] = remaining candidates at depth d

	tt      *transpositionTable
	zobrist zobrist

	tryCounts map[tryKey]int
	stats     Stats

	inCorridor      bool
	branchCapCur    int
	hole4Activated  bool
	solved          bool
	startTime       time.Time
}

// New builds a fresh Search State. tuning.Order must be non-empty and every
// id in it must be present in fits.
func New(l *lattice.Lattice, fits *fit.Table, tuning Tuning) (*State, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	for _, id := range tuning.Order {
		if !fits.HasPiece(id) {
			return nil, ErrUnknownPiece
		}
	}

	s := &State{
		lattice:   l,
		fits:      fits,
		tuning:    tuning,
		occ:       bitset.NewSet(l.Len()),
		tt:        newTranspositionTable(tuning.TTMax, tuning.TTTrimKeep),
		zobrist:   newZobrist(tuning.Seed, l.Len(), len(tuning.Order)),
		tryCounts: make(map[tryKey]int),
		stats:     newStats(),
		startTime: time.Now(),
	}
	return s, nil
}

// PlacedCount returns the number of pieces placed so far (== cursor).
func (s *State) PlacedCount() int { return s.cursor }

// TotalPieces returns the total slot count (len(Tuning.Order)).
func (s *State) TotalPieces() int { return len(s.tuning.Order) }

// ElapsedSeconds returns wall-clock time since this State was constructed.
func (s *State) ElapsedSeconds() float64 { return time.Since(s.startTime).Seconds() }

// Placements returns the current placement stack. The returned slice must
// not be mutated by callers.
func (s *State) Placements() []Placement { return s.placements }

// Stats returns a snapshot of the current statistics.
func (s *State) Stats() Stats { return s.stats }

// Solved reports whether the attempt has reached a complete tiling.
func (s *State) Solved() bool { return s.solved }

// Cursor returns the current depth (next piece slot index).
func (s *State) Cursor() int { return s.cursor }

// BestDepthEver returns the best depth reached so far in this attempt.
func (s *State) BestDepthEver() int { return s.stats.BestDepthEver }

func (s *State) updateBestDepth() {
	if s.cursor > s.stats.BestDepthEver {
		s.stats.BestDepthEver = s.cursor
	}
}

func (s *State) currentFrontier() []candidate {
	if s.cursor < len(s.frontier) {
		return s.frontier[s.cursor]
	}
	return nil
}

func (s *State) buildFrontierForCursor() {
	if s.cursor >= len(s.tuning.Order) {
		return
	}
	pieceID := s.tuning.Order[s.cursor]
	cands := s.buildCandidates(pieceID)
	if len(s.frontier) <= s.cursor {
		s.frontier = append(s.frontier, cands)
	} else {
		s.frontier[s.cursor] = cands
	}
}

// popFrontier removes and returns the first candidate at the current
// cursor's frontier, and the remaining count after popping.
func (s *State) popFrontier() (candidate, int) {
	d := s.frontier[s.cursor]
	c := d[0]
	s.frontier[s.cursor] = d[1:]
	return c, len(d) - 1
}

func (s *State) apply(pieceID string, c candidate) {
	s.occ.Or(c.mask)
	s.placements = append(s.placements, Placement{
		PieceID:        pieceID,
		OriginIdx:      c.originIdx,
		OrientationIdx: c.orientationIdx,
		Mask:           c.mask,
		Covered:        c.covered,
	})
	key := tryKey{pieceID: pieceID, originIdx: int32(c.originIdx), oriIdx: int32(c.orientationIdx)}
	s.tryCounts[key]++
	s.cursor++
}

// backtrack undoes the last placement and drops the now-stale frontier
// entry at the depth being vacated.
//
// recordTT controls whether the post-backtrack (occupancy, cursor) pair is
// stored in the transposition table. Only the exhausted-frontier backtrack
// records; the TT-prune backtrack must not, or each recorded parent would
// itself prune on the very next step and a single dead end would cascade
// the whole stack down to root.
func (s *State) backtrack(recordTT bool) {
	if len(s.frontier) > s.cursor {
		s.frontier = s.frontier[:s.cursor]
	}
	s.cursor--
	last := s.placements[len(s.placements)-1]
	s.placements = s.placements[:len(s.placements)-1]
	s.occ.AndNot(last.Mask)

	if recordTT {
		h := s.zobrist.hash(s.occ, s.cursor)
		s.tt.record(h, s.cursor)
	}
}

// StepOnce advances or backtracks the search by one unit of work. It
// returns (progressed, solved).
func (s *State) StepOnce() (progressed bool, solved bool) {
	if s.solved {
		return false, true
	}
	s.stats.Attempts++

	n := len(s.tuning.Order)
	if s.cursor >= n {
		s.solved = true
		s.updateBestDepth()
		return true, true
	}

	// TT lookup at entry to this depth.
	h := s.zobrist.hash(s.occ, s.cursor)
	if s.tt.shouldPrune(h, s.cursor) {
		s.stats.TTHits++
		s.stats.TTPrunes++
		if s.cursor == 0 {
			return false, false
		}
		s.backtrack(false)
		return true, false
	}

	if s.cursor >= len(s.frontier) {
		s.buildFrontierForCursor()
	}

	progressed = false
	for {
		if s.cursor >= n {
			s.solved = true
			s.updateBestDepth()
			return true, true
		}

		d := s.currentFrontier()
		if len(d) == 0 {
			if s.cursor == 0 {
				s.updateBestDepth()
				return progressed, false
			}
			s.backtrack(true)
			progressed = true
			break
		}

		c, remaining := s.popFrontier()
		pieceID := s.tuning.Order[s.cursor]
		s.apply(pieceID, c)
		s.updateBestDepth()
		progressed = true

		if remaining == 0 {
			// forced-singleton chain: keep advancing without yielding.
			s.stats.ForcedSingletons++
			if s.cursor < n && s.cursor >= len(s.frontier) {
				s.buildFrontierForCursor()
			}
			continue
		}
		break
	}

	s.updateBestDepth()
	return progressed, s.solved
}
