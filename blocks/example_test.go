package blocks_test

import (
	"fmt"

	"github.com/cwbudde/algo-binstats/blocks"
)

func ExampleEntropyProfile() {
	// First block: a single repeated value. Second block: every byte value
	// exactly twice.
	seq := make([]byte, 1024)
	for i := 512; i < 1024; i++ {
		seq[i] = byte(i / 2)
	}

	p, _ := blocks.EntropyProfile(seq, blocks.Config{BlockSize: 512})

	fmt.Printf("entropy per block: %.0f\n", p.Values)
	// Output:
	// entropy per block: [0 8]
}

func ExampleValueMatrix() {
	m, _ := blocks.ValueMatrix([]byte("abcdefgh"), 3)

	for r := 0; r < m.Rows; r++ {
		fmt.Printf("%q\n", m.Cells[r*m.Width:(r+1)*m.Width])
	}
	// Output:
	// "abc"
	// "def"
	// "gh\x00"
}
