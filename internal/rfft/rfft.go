// Package rfft is the shared real-input discrete Fourier transform behind
// the spectral and autocorrelation engines.
//
// Transforms are exact-length: the callers' index-to-period mapping and
// circular autocorrelation are both defined over exactly N samples, so
// inputs are never zero-padded. Power-of-two lengths run on a plan-based
// FFT; all other lengths use an arbitrary-length real FFT. If plan creation
// fails, the arbitrary-length path is used instead, so both functions are
// total over their documented inputs.
package rfft

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Forward returns the non-negative-frequency DFT coefficients of the real
// sequence x: bins 0..n/2, unnormalized (bin 0 is the plain sum of x).
func Forward(x []float64) []complex128 {
	n := len(x)
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []complex128{complex(x[0], 0)}
	case isPowerOfTwo(n):
		if half, ok := forwardPow2(x); ok {
			return half
		}
	}

	return fourier.NewFFT(n).Coefficients(nil, x)
}

// InverseReal reconstructs the length-n real sequence whose forward
// coefficients are half, applying the 1/n scale factor. half must hold the
// n/2+1 non-negative-frequency bins of a conjugate-symmetric spectrum, as
// produced by Forward.
func InverseReal(half []complex128, n int) []float64 {
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []float64{real(half[0])}
	case isPowerOfTwo(n):
		if out, ok := inversePow2(half, n); ok {
			return out
		}
	}

	seq := fourier.NewFFT(n).Sequence(nil, half)

	// Sequence of Coefficients scales by n; undo that here so both backends
	// return a true inverse.
	scale := 1 / float64(n)
	for i := range seq {
		seq[i] *= scale
	}
	return seq
}

func forwardPow2(x []float64) ([]complex128, bool) {
	n := len(x)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, false
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, false
	}
	return out[:n/2+1], true
}

func inversePow2(half []complex128, n int) ([]float64, bool) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, false
	}

	// Rebuild the negative-frequency half by conjugate symmetry.
	full := make([]complex128, n)
	copy(full, half)
	for k := n/2 + 1; k < n; k++ {
		c := half[n-k]
		full[k] = complex(real(c), -imag(c))
	}

	out := make([]complex128, n)
	if err := plan.Inverse(out, full); err != nil {
		return nil, false
	}

	res := make([]float64, n)
	for i, c := range out {
		res[i] = real(c)
	}
	return res, true
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
