package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ABakker30/ballpuzzle3/canon"
	"github.com/ABakker30/ballpuzzle3/fit"
	"github.com/ABakker30/ballpuzzle3/lattice"
	"github.com/ABakker30/ballpuzzle3/piece"
	"github.com/ABakker30/ballpuzzle3/search"
	"github.com/ABakker30/ballpuzzle3/snapshot"
)

// Outcome classifies how one attempt ended.
type Outcome int

const (
	OutcomeSolved Outcome = iota
	OutcomeExhaustedRoot
	OutcomeStalled
	OutcomeStoppedByUser
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhaustedRoot:
		return "exhausted_root"
	case OutcomeStalled:
		return "stalled"
	case OutcomeStoppedByUser:
		return "stopped_by_user"
	default:
		return "unknown"
	}
}

// headerKeys is the fixed order layered-text metadata is printed in.
var headerKeys = []string{"timestamp", "container_cid_sha256", "sid_state_sha256", "sid_route_sha256"}

// Driver owns the Lattice, fit.Table, and run-control/progress/snapshot
// plumbing for one container+piece-library run. It is the sole owner of
// the search.State it builds per attempt; nothing else may mutate that
// state while snapshot I/O reads it.
type Driver struct {
	lat  *lattice.Lattice
	fits *fit.Table
	ids  []string
	opts Options

	containerName string
	containerPath string
	r             float64

	containerTransform canon.Transform
	containerCID       string

	resultsDir string
	logsDir    string

	progress *snapshot.ProgressWriter
	runctl   *runController

	seen         map[string]bool
	tail         []string
	foundCount   int
	attemptIndex int
	runIndex     int
}

// Summary is the final outcome of a Run call, including the bounded log
// tail accumulated over the run.
type Summary struct {
	Status    string
	Solutions int
	Attempts  int
	Tail      []string
}

// New builds a Driver from an already-parsed container and piece library.
// It constructs the Lattice and fit.Table once, creates the results/logs
// directories, and creates the run-control file with state=run if absent.
func New(containerName, containerPath string, cells []lattice.Cell, r float64, lib piece.Library, opts Options) (*Driver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lat, err := lattice.Build(cells)
	if err != nil {
		return nil, err
	}
	fits := fit.Build(lat, lib)

	resultsDir := opts.ResultsDir
	if resultsDir == "" {
		resultsDir = DefaultSnapshotDir
	}
	logsDir := opts.LogsDir
	if logsDir == "" {
		logsDir = DefaultLogsDir
	}
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, err
	}

	rc, err := newRunController(resolveRunControlPath(opts.RunControlPath, logsDir))
	if err != nil {
		return nil, err
	}

	transform, _, cid := canon.Canonicalize(cells)

	return &Driver{
		lat:                lat,
		fits:               fits,
		ids:                lib.IDs(),
		opts:               opts,
		containerName:      containerName,
		containerPath:      containerPath,
		r:                  r,
		containerTransform: transform,
		containerCID:       cid,
		resultsDir:         resultsDir,
		logsDir:            logsDir,
		progress:           snapshot.NewProgressWriter(filepath.Join(logsDir, "progress.jsonl"), filepath.Join(logsDir, "progress.json")),
		runctl:             rc,
		seen:               make(map[string]bool),
	}, nil
}

// Run repeatedly builds and runs attempts under seed/opener rotation until
// MaxResults distinct solutions are found, the user stops the run, or
// further attempts could only replay the last one (attemptsCannotVary)
// after it solved or exhausted every opener rotation.
func (d *Driver) Run() Summary {
	maxResults := d.opts.effectiveMaxResults()

seedLoop:
	for seedIdx := 0; ; seedIdx++ {
		seed := d.seedForAttempt(seedIdx)
		openerRotation := 0

		for openerTry := 0; ; openerTry++ {
			order := rotateLeft(applyShuffle(baseOrder(d.ids), d.opts.ShufflePieces, seed, d.attemptIndex), openerRotation)

			state, err := search.New(d.lat, d.fits, d.buildTuning(seed, order))
			if err != nil {
				return d.summary("error")
			}

			outcome := d.RunAttempt(state, seed)
			d.attemptIndex++

			switch outcome {
			case OutcomeSolved:
				sig := solutionSignature(state.Placements())
				if !d.seen[sig] {
					d.seen[sig] = true
					d.foundCount++
					d.writeSolution(state)
					if d.foundCount >= maxResults {
						return d.summary("solved")
					}
				}
				if d.attemptsCannotVary() {
					// Every future attempt replays this one move for move;
					// no further distinct solution is reachable.
					return d.summary("solved")
				}
				continue seedLoop
			case OutcomeStoppedByUser:
				return d.summary("stopped_by_user")
			case OutcomeExhaustedRoot:
				if openerTry+1 >= d.opts.TryOpeners {
					if d.attemptsCannotVary() {
						// Root exhaustion under an unchanging seed and order
						// is a proof: rotating to the next seed would replay
						// the exact same attempts.
						return d.summary("exhausted")
					}
					continue seedLoop
				}
				openerRotation = (openerRotation + 1) % len(order)
			case OutcomeStalled:
				continue seedLoop
			}
		}
	}
}

// RunAttempt drives one search.State to completion: it loops StepOnce,
// polling run control and emitting progress/snapshots, until the attempt
// solves, stalls past its depth-keyed window, exhausts at depth 0, or the
// user stops the run.
func (d *Driver) RunAttempt(state *search.State, seed int64) Outcome {
	d.runIndex++
	start := time.Now()
	lastImprovement := start
	lastProgress := start
	lastSnapshot := start
	bestDepth := 0

	for {
		switch d.runctl.poll() {
		case ctlStop:
			d.emitControl("stopped", seed)
			d.emitProgress(state, seed, "stopped_by_user")
			return OutcomeStoppedByUser
		case ctlPause:
			d.emitControl("paused", seed)
			for d.runctl.poll() == ctlPause {
				time.Sleep(50 * time.Millisecond)
			}
			if d.runctl.poll() == ctlStop {
				d.emitControl("stopped", seed)
				d.emitProgress(state, seed, "stopped_by_user")
				return OutcomeStoppedByUser
			}
			d.emitControl("resumed", seed)
		}

		progressed, solved := state.StepOnce()

		now := time.Now()
		if state.BestDepthEver() > bestDepth {
			bestDepth = state.BestDepthEver()
			lastImprovement = now
			if !solved {
				d.emitProgress(state, seed, "")
				lastProgress = now
			}
			if d.opts.SnapshotOnDepth {
				d.writeCurrentSnapshot(state)
			}
		}

		if now.Sub(lastProgress) >= 5*time.Second {
			d.emitProgress(state, seed, "")
			lastProgress = now
		}
		if d.opts.SnapshotInterval > 0 && now.Sub(lastSnapshot) >= d.opts.SnapshotInterval {
			d.writeCurrentSnapshot(state)
			lastSnapshot = now
		}

		if solved {
			d.emitProgress(state, seed, "solved")
			return OutcomeSolved
		}
		if !progressed {
			d.emitProgress(state, seed, "exhausted")
			return OutcomeExhaustedRoot
		}

		if window := d.opts.stallWindow(bestDepth); window > 0 && now.Sub(lastImprovement) >= window {
			d.emitProgress(state, seed, "stalled")
			return OutcomeStalled
		}
	}
}

// attemptsCannotVary reports whether successive attempts are guaranteed to
// replay identically: the seed never advances (RNGSeedSet false) and no
// shuffle mode perturbs the piece order between attempts. When true, one
// exhausted (or solved) seed cycle proves all later seeds exhaust (or
// re-find the same solutions), so the driver may terminate instead of
// looping forever.
func (d *Driver) attemptsCannotVary() bool {
	return !d.opts.RNGSeedSet && d.opts.ShufflePieces == ShuffleNone
}

func (d *Driver) seedForAttempt(seedIdx int) int64 {
	if d.opts.RNGSeedSet {
		return d.opts.RNGSeed + int64(seedIdx)
	}
	return d.opts.RNGSeed
}

func (d *Driver) buildTuning(seed int64, order []string) search.Tuning {
	t := search.DefaultTuning()
	t.Seed = seed
	t.Order = order
	t.BranchCapOpen = d.opts.BranchCapOpen
	t.BranchCapTight = d.opts.BranchCapTight
	t.Deg2Corridor = d.opts.Deg2Corridor
	t.ExposureWeight = d.opts.ExposureWeight
	t.BoundaryExposureWeight = d.opts.BoundaryExposureWeight
	t.LeafWeight = d.opts.LeafWeight
	t.Hole4 = d.opts.Hole4
	t.Hole4Conditional = d.opts.Hole4Conditional
	t.TTMax = d.opts.TTMax
	t.TTTrimKeep = d.opts.TTTrimKeep
	return t
}

func (d *Driver) emitProgress(state *search.State, seed int64, status string) {
	elapsed := state.ElapsedSeconds()
	if elapsed <= 0 {
		elapsed = 1e-9
	}
	stats := state.Stats()
	ev := snapshot.Event{
		Event:          "progress",
		Run:            d.runIndex,
		Seed:           seed,
		Placed:         state.PlacedCount(),
		BestDepth:      state.BestDepthEver(),
		Total:          state.TotalPieces(),
		Attempts:       stats.Attempts,
		AttemptsPerSec: int64(float64(stats.Attempts) / elapsed),
		Status:         status,
	}
	if err := d.progress.Emit(ev); err != nil {
		d.logTail(fmt.Sprintf("[io] progress emit failed: %v", err))
	}
	d.logTail(fmt.Sprintf("placed=%d/%d best=%d attempts=%d", ev.Placed, ev.Total, ev.BestDepth, ev.Attempts))
}

func (d *Driver) emitControl(kind string, seed int64) {
	ev := snapshot.ControlEvent{Event: kind, Run: d.runIndex, Seed: seed, TS: float64(time.Now().UnixNano()) / 1e9}
	if err := d.progress.EmitControl(ev); err != nil {
		d.logTail(fmt.Sprintf("[io] control event failed: %v", err))
	}
	d.logTail("[" + kind + "]")
}

// placementCells renders the current placement stack twice: once as raw
// container (i,j,k) triples for world rendering, once canonicalized for
// CID/SID hashing.
func (d *Driver) placementCells(state *search.State) ([]snapshot.PiecePlacement, []canon.PiecePlacement) {
	placements := state.Placements()
	raw := make([]snapshot.PiecePlacement, len(placements))
	canonical := make([]canon.PiecePlacement, len(placements))
	for i, p := range placements {
		rawCells := make([][3]int, len(p.Covered))
		canonCells := make([]lattice.Cell, len(p.Covered))
		for j, ci := range p.Covered {
			c := d.lat.Cell(int(ci))
			rawCells[j] = [3]int{c.I, c.J, c.K}
			canonCells[j] = d.containerTransform.Apply(c)
		}
		raw[i] = snapshot.PiecePlacement{ID: p.PieceID, CellsIJK: rawCells}
		canonical[i] = canon.PiecePlacement{PieceID: p.PieceID, Cells: canonCells}
	}
	return raw, canonical
}

func (d *Driver) writeWorldArtifacts(base string, state *search.State) {
	raw, canonical := d.placementCells(state)
	sidState := canon.StateSID(d.containerCID, canonical)
	sidRoute := canon.RouteSID(d.containerCID, canonical)

	order := make([]string, len(raw))
	for i, p := range raw {
		order[i] = p.ID
	}

	ts := float64(time.Now().Unix())
	doc := snapshot.BuildWorldDoc(d.containerName, d.containerPath, d.r, order, raw, state.PlacedCount(), d.containerCID, sidState, sidRoute, ts)

	jsonPath := filepath.Join(d.resultsDir, base+".world.json")
	layersPath := filepath.Join(d.resultsDir, base+".world_layers.txt")

	if err := snapshot.WriteWorldJSON(jsonPath, doc); err != nil {
		d.logTail(fmt.Sprintf("[io] world json write failed: %v", err))
	}

	header := map[string]string{
		"timestamp":            fmt.Sprintf("%v", ts),
		"container_cid_sha256": d.containerCID,
		"sid_state_sha256":     sidState,
		"sid_route_sha256":     sidRoute,
	}
	if err := snapshot.WriteWorldLayers(layersPath, raw, headerKeys, header); err != nil {
		d.logTail(fmt.Sprintf("[io] world layers write failed: %v", err))
	}
}

func (d *Driver) writeCurrentSnapshot(state *search.State) {
	d.writeWorldArtifacts(d.containerName+".current", state)
}

func (d *Driver) writeSolution(state *search.State) {
	base := d.containerName
	if d.foundCount > 1 {
		base = fmt.Sprintf("%s.result%d", d.containerName, d.foundCount)
	}
	d.writeWorldArtifacts(base, state)
}

func (d *Driver) logTail(line string) {
	d.tail = append(d.tail, line)
	const tailCap = 256
	if len(d.tail) > tailCap {
		d.tail = d.tail[len(d.tail)-tailCap:]
	}
}

func (d *Driver) summary(status string) Summary {
	return Summary{
		Status:    status,
		Solutions: d.foundCount,
		Attempts:  d.attemptIndex,
		Tail:      append([]string(nil), d.tail...),
	}
}
