// Package pipeline splits an ordered line slice into position-indexed
// chunks, runs a ChunkFunc over them on a bounded worker pool, and stitches
// the per-chunk results back together in chunk order.
//
// The pipeline knows nothing about genes or assays; the only contract is
// ChunkFunc. This keeps it swappable and testable.
package pipeline
