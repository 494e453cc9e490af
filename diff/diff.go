// Package diff measures Hamming distance between equal-length byte
// sequences, either over the full bit expansion or at byte granularity.
package diff

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

// ErrSizeMismatch is returned when the two sequences differ in length.
var ErrSizeMismatch = errors.New("diff: sequences differ in length")

// Bits returns the number of differing bits between a and b: the popcount
// of a[i] XOR b[i] summed over all positions, in [0, 8*len(a)].
func Bits(a, b []byte) (uint64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}

	var count uint64
	i := 0

	// Popcount eight bytes per step over the packed XOR.
	for ; i+8 <= len(a); i += 8 {
		x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		count += uint64(bits.OnesCount64(x))
	}
	for ; i < len(a); i++ {
		count += uint64(bits.OnesCount8(a[i] ^ b[i]))
	}
	return count, nil
}

// Bytes returns the number of positions at which a and b differ (nonzero
// XOR), in [0, len(a)].
func Bytes(a, b []byte) (uint64, error) {
	if len(a) != len(b) {
		return 0, ErrSizeMismatch
	}

	var count uint64
	for i := range a {
		if a[i] != b[i] {
			count++
		}
	}
	return count, nil
}
