// Package xor applies repeating-key XOR transforms to byte sequences.
//
// The mask is tiled against the data from its start: a full mask for every
// complete block, and the first len(src) mod len(mask) mask bytes against
// the final partial block. XOR is its own inverse, so applying the same
// mask twice restores the original sequence.
package xor

import (
	"errors"
	"fmt"
)

// Errors returned by transform functions.
var (
	ErrEmptyMask      = errors.New("xor: empty mask")
	ErrLengthMismatch = errors.New("xor: destination length mismatch")
)

// Repeating XORs src against the tiled mask and returns a freshly owned
// sequence of the same length. An empty mask fails with ErrEmptyMask.
func Repeating(src, mask []byte) ([]byte, error) {
	if len(mask) == 0 {
		return nil, ErrEmptyMask
	}

	out := make([]byte, len(src))
	repeatingTo(out, src, mask)
	return out, nil
}

// RepeatingTo XORs src against the tiled mask into dst, which must have the
// same length as src. dst may alias src for in-place masking.
func RepeatingTo(dst, src, mask []byte) error {
	if len(mask) == 0 {
		return ErrEmptyMask
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(src), len(dst))
	}

	repeatingTo(dst, src, mask)
	return nil
}

func repeatingTo(dst, src, mask []byte) {
	j := 0
	for i := range src {
		dst[i] = src[i] ^ mask[j]
		j++
		if j == len(mask) {
			j = 0
		}
	}
}
