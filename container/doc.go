// Package container parses the container JSON document: the cell set plus
// informational lattice/version/meta/r fields. It performs no
// validation beyond "is this JSON, does it have a non-empty cells array" —
// duplicate-cell and indexing concerns belong to package lattice.
package container
