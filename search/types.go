package search

import "github.com/ABakker30/ballpuzzle3/bitset"

// RouletteMode selects how retained candidates are ordered after ranking
// and capping.
type RouletteMode int

const (
	// RouletteNone keeps the ranked/capped order unchanged.
	RouletteNone RouletteMode = iota
	// RouletteLeastTried shuffles within (score, try-count) buckets using a
	// deterministic per-depth RNG stream, outside of corridors.
	RouletteLeastTried
)

// Default tuning knobs.
const (
	DefaultBranchCapOpen  = 18
	DefaultBranchCapTight = 10
	DefaultRNGSeed        = 1337
	DefaultTTMax          = 1_200_000
	DefaultTTTrimKeep     = 800_000

	DefaultExposureWeight         = 1.0
	DefaultBoundaryExposureWeight = 0.8
	DefaultLeafWeight             = 0.8
)

// Tuning bundles every configurable knob a Search State is built with.
// Zero value is not meaningful; start from DefaultTuning and override.
type Tuning struct {
	Seed int64

	BranchCapOpen  int
	BranchCapTight int
	Deg2Corridor   bool
	Roulette       RouletteMode

	ExposureWeight         float64
	BoundaryExposureWeight float64
	LeafWeight             float64

	Hole4            bool
	Hole4Conditional bool

	TTMax      int
	TTTrimKeep int

	// Order is the fixed slot order the caller has already built (preferred
	// order intersected with available pieces, optionally shuffled and
	// opener-rotated by the driver). State treats it as read-only.
	Order []string
}

// DefaultTuning returns Tuning populated with sane defaults. Order is left
// empty; callers must set it.
func DefaultTuning() Tuning {
	return Tuning{
		Seed:                   DefaultRNGSeed,
		BranchCapOpen:          DefaultBranchCapOpen,
		BranchCapTight:         DefaultBranchCapTight,
		Deg2Corridor:           false,
		Roulette:               RouletteLeastTried,
		ExposureWeight:         DefaultExposureWeight,
		BoundaryExposureWeight: DefaultBoundaryExposureWeight,
		LeafWeight:             DefaultLeafWeight,
		Hole4:                  false,
		Hole4Conditional:       false,
		TTMax:                  DefaultTTMax,
		TTTrimKeep:             DefaultTTTrimKeep,
	}
}

// Validate checks Tuning for internally-consistent values.
func (tn Tuning) Validate() error {
	if tn.BranchCapOpen < 0 || tn.BranchCapTight < 0 {
		return ErrInvalidConfiguration
	}
	if tn.Roulette != RouletteNone && tn.Roulette != RouletteLeastTried {
		return ErrInvalidConfiguration
	}
	if tn.TTMax <= 0 || tn.TTTrimKeep <= 0 || tn.TTTrimKeep > tn.TTMax {
		return ErrInvalidConfiguration
	}
	if len(tn.Order) == 0 {
		return ErrInvalidConfiguration
	}
	return nil
}

// Placement records one applied piece: which piece, where, in which
// orientation, and the resulting mask/covered cells.
type Placement struct {
	PieceID        string
	OriginIdx      int
	OrientationIdx int
	Mask           bitset.Set
	Covered        [4]int32
}

// candidate is an unapplied Placement plus its ranking fields. It never
// escapes the search package.
type candidate struct {
	originIdx      int
	orientationIdx int
	mask           bitset.Set
	covered        [4]int32

	weightedScore float64
	distScore     int
	tryCount      int
}

// tryKey identifies a (piece, origin, orientation) triple for try-count
// bookkeeping.
type tryKey struct {
	pieceID   string
	originIdx int32
	oriIdx    int32
}

// Stats accumulates diagnostic counters for one attempt. All histograms are
// keyed by small non-negative integers.
type Stats struct {
	Attempts         int64
	ForcedSingletons int64

	PrunedIsolated int64
	PrunedCavity   int64
	Considered     int64

	ExposureHist         map[int]int64
	BoundaryExposureHist map[int]int64
	LeafHist             map[int]int64
	ChoiceCountHist      map[int]int64
	AnchorDegreeHist     map[int]int64
	FallbackPiece        map[string]int64

	TTHits   int64
	TTPrunes int64

	BestDepthEver int
}

func newStats() Stats {
	return Stats{
		ExposureHist:         make(map[int]int64),
		BoundaryExposureHist: make(map[int]int64),
		LeafHist:             make(map[int]int64),
		ChoiceCountHist:      make(map[int]int64),
		AnchorDegreeHist:     make(map[int]int64),
		FallbackPiece:        make(map[string]int64),
	}
}
