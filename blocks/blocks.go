// Package blocks computes block-wise statistical progressions over a byte
// sequence: how the value distribution and entropy evolve along the data,
// plus a row-folded view of the raw values. Results are plain numeric
// tables shaped for an external renderer; nothing here draws.
package blocks

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-binstats/stats/entropy"
	"github.com/cwbudde/algo-binstats/stats/freq"
)

// Automatic block sizing derives the block size from the sequence length
// and clamps it into [MinAutoBlockSize, MaxAutoBlockSize]. These are policy
// defaults, not protocol values; set Config.BlockSize to override them.
const (
	MinAutoBlockSize = 0x200
	MaxAutoBlockSize = 0x20000

	freqBlockDivisor    = 256
	entropyBlockDivisor = 1024
)

// ErrEmptyInput is returned for empty sequences, which have no blocks.
var ErrEmptyInput = errors.New("blocks: empty input")

// Config controls block-wise computations.
type Config struct {
	// BlockSize is the number of bytes per block. Values <= 0 select an
	// automatic size derived from the sequence length.
	BlockSize int

	// Log2 reports frequency fractions as log2 values. Cells with a zero
	// count become -Inf; clamping them for display is the renderer's
	// choice.
	Log2 bool
}

// Grid is a dense row-major matrix of per-block values.
type Grid struct {
	BlockSize  int
	Rows, Cols int
	Values     []float64
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.Values[row*g.Cols+col]
}

// Row returns one row as a slice of the grid's backing store.
func (g *Grid) Row(row int) []float64 {
	return g.Values[row*g.Cols : (row+1)*g.Cols]
}

// Profile is a per-block series of scalar values.
type Profile struct {
	BlockSize int
	Values    []float64
}

// Matrix is a row-folded view of a byte sequence. Cells holds Rows*Width
// bytes; the tail of the final row is zero-filled.
type Matrix struct {
	Width, Rows int
	Cells       []byte
}

// At returns the byte at (row, col).
func (m *Matrix) At(row, col int) byte {
	return m.Cells[row*m.Width+col]
}

// FrequencyProgression splits seq into consecutive blocks and computes the
// fractional byte histogram of each: one block per row, 256 columns. The
// final block may be shorter and is normalized by its own length.
// cfg.BlockSize <= 0 selects len(seq)/256, clamped into the automatic
// bounds. An empty sequence fails with ErrEmptyInput.
func FrequencyProgression(seq []byte, cfg Config) (*Grid, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}

	bs := cfg.BlockSize
	if bs <= 0 {
		bs = autoBlockSize(len(seq), freqBlockDivisor)
	}

	rows := (len(seq) + bs - 1) / bs
	g := &Grid{
		BlockSize: bs,
		Rows:      rows,
		Cols:      freq.NumValues,
		Values:    make([]float64, rows*freq.NumValues),
	}

	for r := 0; r < rows; r++ {
		end := (r + 1) * bs
		if end > len(seq) {
			end = len(seq)
		}

		ft, err := freq.Frac(seq[r*bs : end])
		if err != nil {
			return nil, fmt.Errorf("blocks: block %d: %w", r, err)
		}

		row := g.Row(r)
		copy(row, ft[:])
		if cfg.Log2 {
			for i, v := range row {
				row[i] = math.Log2(v)
			}
		}
	}
	return g, nil
}

// EntropyProfile computes the byte-wise Shannon entropy of each consecutive
// block of seq. The final block may be shorter. cfg.BlockSize <= 0 selects
// len(seq)/1024, clamped into the automatic bounds; cfg.Log2 is ignored
// (entropy is already logarithmic). An empty sequence fails with
// ErrEmptyInput.
func EntropyProfile(seq []byte, cfg Config) (*Profile, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}

	bs := cfg.BlockSize
	if bs <= 0 {
		bs = autoBlockSize(len(seq), entropyBlockDivisor)
	}

	rows := (len(seq) + bs - 1) / bs
	p := &Profile{BlockSize: bs, Values: make([]float64, rows)}

	for r := 0; r < rows; r++ {
		end := (r + 1) * bs
		if end > len(seq) {
			end = len(seq)
		}

		h, err := entropy.Bytes(seq[r*bs : end])
		if err != nil {
			return nil, fmt.Errorf("blocks: block %d: %w", r, err)
		}
		p.Values[r] = h
	}
	return p, nil
}

// ValueMatrix folds seq into rows of width bytes, zero-filling the tail of
// the final row. width <= 0 selects floor(sqrt(len(seq))), at least 1. An
// empty sequence fails with ErrEmptyInput.
func ValueMatrix(seq []byte, width int) (*Matrix, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}

	if width <= 0 {
		width = int(math.Sqrt(float64(len(seq))))
		if width < 1 {
			width = 1
		}
	}

	rows := (len(seq) + width - 1) / width
	m := &Matrix{Width: width, Rows: rows, Cells: make([]byte, rows*width)}
	copy(m.Cells, seq)
	return m, nil
}

func autoBlockSize(n, divisor int) int {
	bs := n / divisor
	if bs < MinAutoBlockSize {
		bs = MinAutoBlockSize
	}
	if bs > MaxAutoBlockSize {
		bs = MaxAutoBlockSize
	}
	return bs
}
