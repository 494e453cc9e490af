// Package entropy computes Shannon entropy of byte sequences.
//
// Entropy is accumulated as -sum(p*log2(p)) over the observed symbol
// distribution: byte values for Bytes (result in [0,8] bits per byte),
// adjacent byte pairs for Digraphs (result in [0,16] bits per pair).
package entropy

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-binstats/stats/freq"
	"github.com/cwbudde/algo-binstats/stats/ngram"
)

// Errors returned by entropy functions.
var (
	ErrEmptyInput = errors.New("entropy: empty input")
	ErrTooShort   = errors.New("entropy: sequence shorter than n-gram order")
)

// Bytes returns the Shannon entropy of the byte-value distribution of seq
// in bits per byte. The result is 0 for a constant sequence and approaches
// 8 for uniformly random data. An empty sequence fails with ErrEmptyInput.
func Bytes(seq []byte) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptyInput
	}

	t := freq.Count(seq)
	return fromCounts(t[:], uint64(len(seq))), nil
}

// Digraphs returns the Shannon entropy of the adjacent-pair distribution of
// seq in bits per pair, in [0,16]. Sequences shorter than 2 bytes fail with
// ErrTooShort.
func Digraphs(seq []byte) (float64, error) {
	if len(seq) < 2 {
		return 0, ErrTooShort
	}

	t := ngram.Digraphs(seq)
	return fromCounts(t.Counts(), t.Total()), nil
}

// fromCounts accumulates -p*log2(p) over nonzero counts. Zero counts must
// be skipped: log2(0) would poison the sum. Probabilities are divided out
// per cell rather than multiplied by a reciprocal so that a count equal to
// the total is exactly 1 and a constant sequence lands on exactly 0.
func fromCounts(counts []uint64, total uint64) float64 {
	sum := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		sum -= p * math.Log2(p)
	}
	return sum
}
