// Package ngram counts digraph (2-gram) and trigraph (3-gram) co-occurrences
// of adjacent byte values.
//
// Windows overlap: a sequence of length N contains N-1 digraphs and N-2
// trigraphs, each advanced by one byte. Tables are dense and flat so a
// renderer can consume them directly as 256x256 (or 256^3) grids without
// touching this package's internals.
//
// # Memory
//
// The trigraph table has 256^3 = 16,777,216 cells and is backed by a single
// 128 MiB allocation. That one block is the dominant memory cost of the
// whole module; it is deliberately a flat slice rather than nested maps or
// slices, which would roughly double the footprint and scatter it across
// the heap. Callers that only need pair statistics should stay with
// Digraphs (65,536 cells, 512 KiB).
package ngram
