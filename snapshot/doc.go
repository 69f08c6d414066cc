// Package snapshot implements the external I/O surface of a solver run:
// the world JSON and layered-text renderers, the append-only progress
// stream and its overwritten summary file. Overwritten files (world JSON,
// layered text, progress summary) go to a temp path first and are then
// renamed into place, retrying a failed rename for up to ~1.2s; the
// progress stream is appended to directly, retrying a failed append for
// the same window. Snapshot and progress I/O is always best-effort and
// never interrupts the search.
package snapshot
