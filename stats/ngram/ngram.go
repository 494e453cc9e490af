package ngram

import "errors"

const (
	digraphCells  = 256 * 256
	trigraphCells = 256 * 256 * 256
)

// ErrTooShort is returned when a fractional table is requested for a
// sequence shorter than the n-gram order (no windows, so the normalizing
// total is zero).
var ErrTooShort = errors.New("ngram: sequence shorter than n-gram order")

// DigraphTable is a dense 256x256 table of adjacent byte-pair counts.
type DigraphTable struct {
	counts []uint64
	total  uint64
}

// TrigraphTable is a dense 256x256x256 table of adjacent byte-triple counts.
type TrigraphTable struct {
	counts []uint64
	total  uint64
}

// Digraphs counts every adjacent byte pair in seq, sliding a width-2 window
// with stride 1 (pairs overlap). The total over all cells is
// max(len(seq)-1, 0).
func Digraphs(seq []byte) *DigraphTable {
	t := &DigraphTable{counts: make([]uint64, digraphCells)}
	for i := 0; i+1 < len(seq); i++ {
		t.counts[digraphIndex(seq[i], seq[i+1])]++
		t.total++
	}
	return t
}

// Trigraphs counts every adjacent byte triple in seq, sliding a width-3
// window with stride 1. The total over all cells is max(len(seq)-2, 0).
func Trigraphs(seq []byte) *TrigraphTable {
	t := &TrigraphTable{counts: make([]uint64, trigraphCells)}
	for i := 0; i+2 < len(seq); i++ {
		t.counts[trigraphIndex(seq[i], seq[i+1], seq[i+2])]++
		t.total++
	}
	return t
}

// DigraphsFrac returns the fractional digraph table of seq as a flat
// row-major slice: each window count divided by len(seq)-1. Sequences
// shorter than 2 bytes fail with ErrTooShort.
func DigraphsFrac(seq []byte) ([]float64, error) {
	return Digraphs(seq).Frac()
}

// TrigraphsFrac returns the fractional trigraph table of seq as a flat
// row-major slice: each window count divided by len(seq)-2. Sequences
// shorter than 3 bytes fail with ErrTooShort.
func TrigraphsFrac(seq []byte) ([]float64, error) {
	return Trigraphs(seq).Frac()
}

func digraphIndex(first, second byte) int {
	return int(first)<<8 | int(second)
}

func trigraphIndex(first, second, third byte) int {
	return int(first)<<16 | int(second)<<8 | int(third)
}

// At returns the count for the pair (first, second).
func (t *DigraphTable) At(first, second byte) uint64 {
	return t.counts[digraphIndex(first, second)]
}

// Total returns the number of counted windows: max(len(seq)-1, 0).
func (t *DigraphTable) Total() uint64 { return t.total }

// Counts exposes the table as a flat row-major slice of 65536 cells; the
// cell for (first, second) is at index first*256+second. The slice is the
// table's backing store, not a copy.
func (t *DigraphTable) Counts() []uint64 { return t.counts }

// Frac returns the table normalized by the window total, flat row-major.
// A zero total fails with ErrTooShort.
func (t *DigraphTable) Frac() ([]float64, error) {
	return fracCounts(t.counts, t.total)
}

// At returns the count for the triple (first, second, third).
func (t *TrigraphTable) At(first, second, third byte) uint64 {
	return t.counts[trigraphIndex(first, second, third)]
}

// Total returns the number of counted windows: max(len(seq)-2, 0).
func (t *TrigraphTable) Total() uint64 { return t.total }

// Counts exposes the table as a flat row-major slice of 16777216 cells; the
// cell for (first, second, third) is at index (first*256+second)*256+third.
// The slice is the table's backing store, not a copy.
func (t *TrigraphTable) Counts() []uint64 { return t.counts }

// Frac returns the table normalized by the window total, flat row-major.
// A zero total fails with ErrTooShort.
func (t *TrigraphTable) Frac() ([]float64, error) {
	return fracCounts(t.counts, t.total)
}

func fracCounts(counts []uint64, total uint64) ([]float64, error) {
	if total == 0 {
		return nil, ErrTooShort
	}

	out := make([]float64, len(counts))
	inv := 1 / float64(total)
	for i, c := range counts {
		if c != 0 {
			out[i] = float64(c) * inv
		}
	}
	return out, nil
}
