package rfft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-binstats/internal/testutil"
)

// naiveHalfDFT computes bins 0..n/2 of the unnormalized DFT directly.
func naiveHalfDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n/2+1)
	for k := range out {
		var sum complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

// Lengths chosen to hit both the plan-based power-of-two path and the
// arbitrary-length path, including odd and prime sizes.
var lengths = []int{1, 2, 3, 4, 5, 8, 12, 16, 31, 32, 60, 64, 100, 128}

func TestForwardMatchesNaiveDFT(t *testing.T) {
	for _, n := range lengths {
		x := testutil.Noise(int64(n), n)

		got := Forward(x)
		want := naiveHalfDFT(x)

		if len(got) != len(want) {
			t.Fatalf("n=%d: bin count %d, want %d", n, len(got), len(want))
		}
		for k := range got {
			if d := cmplx.Abs(got[k] - want[k]); d > 1e-9 {
				t.Errorf("n=%d bin %d: got %v, want %v (diff %v)", n, k, got[k], want[k], d)
			}
		}
	}
}

func TestForwardDCBin(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	got := Forward(x)
	if d := cmplx.Abs(got[0] - complex(15, 0)); d > 1e-12 {
		t.Errorf("bin 0 = %v, want 15", got[0])
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range lengths {
		x := testutil.Noise(int64(n)+50, n)

		got := InverseReal(Forward(x), n)

		testutil.RequireSliceNearlyEqual(t, got, x, 1e-9)
	}
}

func TestForwardEmpty(t *testing.T) {
	if got := Forward(nil); got != nil {
		t.Errorf("Forward(nil) = %v, want nil", got)
	}
	if got := InverseReal(nil, 0); got != nil {
		t.Errorf("InverseReal(nil, 0) = %v, want nil", got)
	}
}

func TestBackendsAgree(t *testing.T) {
	// 64 runs the plan path, 60 the arbitrary-length path; both must match
	// the same analytic spectrum for a pure cosine (bins k0 and only k0).
	for _, n := range []int{60, 64} {
		k0 := 5
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Cos(2 * math.Pi * float64(k0) * float64(i) / float64(n))
		}

		half := Forward(x)
		for k := range half {
			want := 0.0
			if k == k0 {
				want = float64(n) / 2
			}
			if d := cmplx.Abs(half[k] - complex(want, 0)); d > 1e-9*float64(n) {
				t.Errorf("n=%d bin %d: got %v, want %v", n, k, half[k], want)
			}
		}
	}
}
