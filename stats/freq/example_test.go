package freq_test

import (
	"fmt"

	"github.com/cwbudde/algo-binstats/stats/freq"
)

func ExampleCount() {
	seq := []byte{0, 0, 1, 1, 1, 2}

	t := freq.Count(seq)

	fmt.Printf("count[0]=%d count[1]=%d count[2]=%d\n", t[0], t[1], t[2])
	fmt.Printf("total=%d\n", t.Sum())

	// Output:
	// count[0]=2 count[1]=3 count[2]=1
	// total=6
}

func ExampleFrac() {
	seq := []byte{'a', 'a', 'b', 'b'}

	f, _ := freq.Frac(seq)

	fmt.Printf("frac[a]=%.2f frac[b]=%.2f frac[c]=%.2f\n", f['a'], f['b'], f['c'])

	// Output:
	// frac[a]=0.50 frac[b]=0.50 frac[c]=0.00
}
