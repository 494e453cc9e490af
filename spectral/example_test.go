package spectral_test

import (
	"fmt"

	"github.com/cwbudde/algo-binstats/spectral"
)

func ExamplePowerSpectrum() {
	// A marker byte every 4 positions: the strongest spectral point sits
	// at period 4.
	seq := make([]byte, 16)
	for i := 0; i < len(seq); i += 4 {
		seq[i] = 200
	}

	s := spectral.PowerSpectrum(seq)

	peak := 0
	for i := range s.Powers {
		if s.Powers[i] > s.Powers[peak] {
			peak = i
		}
	}
	fmt.Printf("points: %d\n", s.Len())
	fmt.Printf("strongest period: %g\n", s.Periods[peak])

	// Output:
	// points: 7
	// strongest period: 4
}
