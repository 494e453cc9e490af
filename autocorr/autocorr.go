package autocorr

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-binstats/binseq"
	"github.com/cwbudde/algo-binstats/internal/rfft"
)

// Mode selects the autocorrelation algorithm.
type Mode int

const (
	// ModeDirect counts agreeing byte positions between the sequence and
	// its shifted self. Linear semantics, O(N^2).
	ModeDirect Mode = iota

	// ModeFFT computes circular autocorrelation through the frequency
	// domain. O(N log N).
	ModeFFT
)

// ErrUnknownMode is returned by Series for mode values other than
// ModeDirect and ModeFFT.
var ErrUnknownMode = errors.New("autocorr: unknown mode")

// Series computes the autocorrelation of seq with the selected algorithm.
// The result has one value per shift, 0..len(seq)-1.
func Series(seq []byte, mode Mode) ([]float64, error) {
	switch mode {
	case ModeDirect:
		return Direct(seq), nil
	case ModeFFT:
		return FFT(seq), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
}

// Direct computes linear autocorrelation at byte granularity.
//
// The value at shift s is the number of positions at which seq agrees with
// itself shifted by s: (N-s) - mismatches(seq[0:N-s], seq[s:N]), counting a
// mismatch wherever the XOR of the two bytes is nonzero (whole bytes, not
// individual bits). Shift 0 therefore yields exactly N.
func Direct(seq []byte) []float64 {
	n := len(seq)
	out := make([]float64, n)

	for s := 0; s < n; s++ {
		overlap := n - s
		mismatches := 0
		for i := 0; i < overlap; i++ {
			if seq[i] != seq[s+i] {
				mismatches++
			}
		}
		out[s] = float64(overlap - mismatches)
	}
	return out
}

// FFT computes circular autocorrelation: the real part of the inverse
// transform of the forward transform times its own conjugate. The value at
// shift s is sum(seq[i]*seq[(i+s) mod N]); shift 0 carries the total
// signal energy. See the package documentation for the wraparound caveat.
func FFT(seq []byte) []float64 {
	n := len(seq)
	if n == 0 {
		return nil
	}

	half := rfft.Forward(binseq.Floats(seq))
	for i, c := range half {
		re, im := real(c), imag(c)
		half[i] = complex(re*re+im*im, 0)
	}

	return rfft.InverseReal(half, n)
}
