// Package canon implements container canonicalization and the CID/SID
// solution identifiers: enumerate the 24 proper cubic
// rotations, translate each rotated cell set to a zero minimum, keep the
// lexicographically smallest serialization, and hash it with SHA-256. The
// winning rotation and translation are then reused to derive order-agnostic
// and order-aware solution hashes from a set of piece placements.
package canon
