// Package spectral computes FFT power spectra of byte sequences, mapped to
// repetition periods.
//
// A byte sequence with structure that recurs every P bytes concentrates
// spectral power at frequency indices k = m*N/P. Reporting each index as
// its period N/k turns the spectrum into a direct answer to "how long is
// the repeating unit", which is the natural axis for inspecting ciphertext
// key lengths, record sizes, or container framing. Values are linear;
// renderers conventionally plot them on a logarithmic period axis, but that
// choice stays with the caller.
package spectral

import (
	"github.com/cwbudde/algo-binstats/binseq"
	"github.com/cwbudde/algo-binstats/internal/rfft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is a one-sided power spectrum over repetition periods.
//
// Entries are index-aligned: Periods[i] = N/k and Powers[i] = |X[k]|^2 for
// frequency index k = i+1, where N is the analyzed sequence length and X
// its discrete Fourier transform. The zero-frequency bin and everything
// from the Nyquist index upward are omitted, so k runs 1..N/2-1 and periods
// descend from N to just above 2.
type Spectrum struct {
	Periods []float64
	Powers  []float64
}

// Len returns the number of spectral points.
func (s Spectrum) Len() int { return len(s.Powers) }

// PowerSpectrum computes the power spectrum of seq interpreted as
// real-valued samples. Sequences shorter than 4 bytes have no in-range
// frequency index and yield an empty spectrum.
func PowerSpectrum(seq []byte) Spectrum {
	n := len(seq)
	mid := n / 2
	if mid < 2 {
		return Spectrum{}
	}

	half := rfft.Forward(binseq.Floats(seq))
	kept := half[1:mid]

	re := make([]float64, len(kept))
	im := make([]float64, len(kept))
	for i, c := range kept {
		re[i] = real(c)
		im[i] = imag(c)
	}

	powers := make([]float64, len(kept))
	vecmath.Power(powers, re, im)

	periods := make([]float64, len(kept))
	for i := range periods {
		periods[i] = float64(n) / float64(i+1)
	}

	return Spectrum{Periods: periods, Powers: powers}
}
