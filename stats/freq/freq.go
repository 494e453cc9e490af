// Package freq computes byte-value frequency statistics.
package freq

import "errors"

// NumValues is the size of the byte alphabet.
const NumValues = 256

// ErrEmptyInput is returned when a fractional histogram is requested for an
// empty sequence (the normalizing total would be zero).
var ErrEmptyInput = errors.New("freq: empty input")

// Table is a dense byte-value histogram. The index is the byte value, the
// entry its occurrence count.
type Table [NumValues]uint64

// FracTable is a dense fractional byte-value histogram. Entries sum to 1
// within floating-point tolerance.
type FracTable [NumValues]float64

// Count returns the byte-value histogram of seq. The sum over all entries
// equals len(seq).
func Count(seq []byte) Table {
	var t Table
	for _, b := range seq {
		t[b]++
	}
	return t
}

// Frac returns the fractional byte-value histogram of seq: each entry is
// count/len(seq). An empty sequence fails with ErrEmptyInput.
func Frac(seq []byte) (FracTable, error) {
	t := Count(seq)
	return t.Frac()
}

// Sum returns the total count over all entries, which for a table produced
// by Count is the source sequence length.
func (t *Table) Sum() uint64 {
	var sum uint64
	for _, c := range t {
		sum += c
	}
	return sum
}

// Frac returns the table normalized by its total count. A zero total fails
// with ErrEmptyInput.
func (t *Table) Frac() (FracTable, error) {
	total := t.Sum()
	if total == 0 {
		return FracTable{}, ErrEmptyInput
	}

	var f FracTable
	inv := 1 / float64(total)
	for i, c := range t {
		f[i] = float64(c) * inv
	}
	return f, nil
}
