// Package driver implements the run driver: it builds a fresh search.State
// for every attempt under seed/opener rotation and a deterministic shuffle
// mode, runs search.State.StepOnce in a loop subject to per-depth stall
// windows, classifies each attempt's outcome, dedups solutions by
// signature, and emits progress events and world snapshots through package
// snapshot. It also hosts the cooperative run-control poll:
// pause/resume/stop via an externally-written JSON file.
//
// Driver is a dedicated engine struct holding configuration, precomputed
// data, and current search state, with sparse deadline checks, rather than
// closures threading state by hand.
package driver
