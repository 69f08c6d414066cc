package driver

import "time"

// ShuffleMode selects how the preferred piece order is perturbed before an
// attempt.
type ShuffleMode int

const (
	// ShuffleNone leaves the preferred-then-sorted order unchanged.
	ShuffleNone ShuffleMode = iota
	// ShuffleWithinBuckets deterministically shuffles inside contiguous
	// runs of pieces sharing the same preference bucket.
	ShuffleWithinBuckets
	// ShuffleFull deterministically shuffles the whole order.
	ShuffleFull
)

// Default tuning values.
const (
	DefaultRNGSeed     = 1337
	DefaultMaxResults  = 1
	DefaultTryOpeners  = 6
	DefaultSnapshotDir = "results"
	DefaultLogsDir     = "logs"
)

// Options bundles every driver-level tunable: a single struct with a
// DefaultOptions constructor, one field per knob, zero value never
// meaningful on its own.
type Options struct {
	// RNGSeed seeds every attempt's search.Tuning.Seed and Zobrist table.
	// If RNGSeedSet is false, every attempt uses RNGSeed unmodified; if
	// true, seed cycle N uses RNGSeed+N.
	RNGSeed    int64
	RNGSeedSet bool

	// RestartOnStall is the general per-attempt stall window. Zero means
	// unset (no general fallback window).
	RestartOnStall time.Duration
	// StallBelow23, StallAt23, StallAt24 override RestartOnStall depending
	// on the best depth reached so far in the attempt. Zero means unset.
	StallBelow23 time.Duration
	StallAt23    time.Duration
	StallAt24    time.Duration

	// MaxResults is the number of distinct solutions to emit before
	// terminating. Values <= 0 are treated as 1.
	MaxResults int

	ShufflePieces ShuffleMode

	// TryOpeners is the maximum number of opener rotations attempted per
	// seed before moving on, when an attempt exhausts at depth 0.
	TryOpeners int

	Hole4            bool
	Hole4Conditional bool

	// SnapshotInterval is the wall-clock period between rolling ".current"
	// snapshots. Zero disables interval-based snapshotting.
	SnapshotInterval time.Duration
	// SnapshotOnDepth additionally snapshots whenever best-depth improves.
	SnapshotOnDepth bool

	// CheckThickness is diagnostic only; it is accepted for configuration
	// compatibility and never consulted by the search.
	CheckThickness bool

	// ResultsDir and LogsDir are the output directories for world
	// snapshots and progress/run-control files, respectively.
	ResultsDir string
	LogsDir    string

	// RunControlPath overrides the run-control file location. Empty means
	// "<LogsDir>/runctl.json", itself overridable by the
	// BALLPUZZLE_RUNCTL_PATH environment variable.
	RunControlPath string

	BranchCapOpen          int
	BranchCapTight         int
	Deg2Corridor           bool
	ExposureWeight         float64
	BoundaryExposureWeight float64
	LeafWeight             float64
	TTMax                  int
	TTTrimKeep             int
}

// DefaultOptions returns Options populated with the stock defaults.
func DefaultOptions() Options {
	return Options{
		RNGSeed:                DefaultRNGSeed,
		MaxResults:             DefaultMaxResults,
		TryOpeners:             DefaultTryOpeners,
		ResultsDir:             DefaultSnapshotDir,
		LogsDir:                DefaultLogsDir,
		BranchCapOpen:          18,
		BranchCapTight:         10,
		ExposureWeight:         1.0,
		BoundaryExposureWeight: 0.8,
		LeafWeight:             0.8,
		TTMax:                  1_200_000,
		TTTrimKeep:             800_000,
	}
}

// Validate checks Options for internally-consistent values.
func (o Options) Validate() error {
	if o.TryOpeners < 0 {
		return ErrInvalidConfiguration
	}
	if o.ShufflePieces != ShuffleNone && o.ShufflePieces != ShuffleWithinBuckets && o.ShufflePieces != ShuffleFull {
		return ErrInvalidConfiguration
	}
	if o.BranchCapOpen < 0 || o.BranchCapTight < 0 {
		return ErrInvalidConfiguration
	}
	return nil
}

func (o Options) effectiveMaxResults() int {
	if o.MaxResults <= 0 {
		return 1
	}
	return o.MaxResults
}

// stallWindow returns the stall timeout to apply at the given best depth,
// walking the depth-keyed override chain, falling back to RestartOnStall
// and finally to "no limit" (0) when nothing is set.
func (o Options) stallWindow(bestDepth int) time.Duration {
	switch {
	case bestDepth >= 24 && o.StallAt24 > 0:
		return o.StallAt24
	case bestDepth >= 23 && o.StallAt23 > 0:
		return o.StallAt23
	case bestDepth < 23 && o.StallBelow23 > 0:
		return o.StallBelow23
	default:
		return o.RestartOnStall
	}
}
