// Package search implements the depth-first placement search: anchor
// selection, candidate ranking and capping, isolated-empty and
// size-mod-4 pruning, a bounded Zobrist transposition table, and the
// step_once state machine that advances or backtracks the search by one
// unit of work.
//
// A State is built fresh for every attempt by the driver package (package
// driver); the Lattice and fit.Table it references are shared, immutable,
// and built once at solver startup. All randomized behavior (roulette
// bucket shuffling, Zobrist key generation) is derived deterministically
// from Tuning.Seed.
package search
