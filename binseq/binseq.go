// Package binseq normalizes heterogeneous inputs into canonical byte
// sequences.
//
// Every analysis package in this module operates on plain []byte. binseq is
// the single conversion point for everything else: strings, integer slices
// of any width or sign, and float slices. Integer coercion wraps modulo 256
// (ordinary unsigned truncation, so -1 becomes 0xFF); float coercion
// truncates toward zero first and fails for values with no integer
// representation (NaN, ±Inf).
package binseq

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by conversion functions.
var (
	ErrUnsupported = errors.New("binseq: unsupported input type")
	ErrNotInteger  = errors.New("binseq: element has no integer representation")
)

// Integer is the constraint for integer element types accepted by FromInts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the constraint for floating-point element types accepted by
// FromFloats.
type Float interface {
	~float32 | ~float64
}

// Normalize converts v into a canonical byte sequence.
//
// A []byte input is returned as-is without copying, so the result aliases
// the caller's buffer. A string is reinterpreted element-wise. Integer
// slices are coerced with FromInts, float slices with FromFloats; both
// return freshly owned buffers. Any other type fails with ErrUnsupported.
func Normalize(v any) ([]byte, error) {
	switch s := v.(type) {
	case []byte:
		return s, nil
	case string:
		return []byte(s), nil
	case []int:
		return FromInts(s), nil
	case []int8:
		return FromInts(s), nil
	case []int16:
		return FromInts(s), nil
	case []int32:
		return FromInts(s), nil
	case []int64:
		return FromInts(s), nil
	case []uint:
		return FromInts(s), nil
	case []uint16:
		return FromInts(s), nil
	case []uint32:
		return FromInts(s), nil
	case []uint64:
		return FromInts(s), nil
	case []float32:
		return FromFloats(s)
	case []float64:
		return FromFloats(s)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// FromInts coerces an integer slice to bytes. Each element wraps modulo 256,
// matching unsigned truncation: 300 becomes 44 and -1 becomes 255.
func FromInts[T Integer](v []T) []byte {
	out := make([]byte, len(v))
	for i, x := range v {
		out[i] = byte(x)
	}
	return out
}

// FromFloats coerces a float slice to bytes. Each element is truncated
// toward zero and then wrapped modulo 256, so 2.9 becomes 2 and -1.5
// becomes 255. Elements without an integer representation (NaN, ±Inf) fail
// with ErrNotInteger.
func FromFloats[T Float](v []T) ([]byte, error) {
	out := make([]byte, len(v))
	for i, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: index %d: %v", ErrNotInteger, i, f)
		}

		// Wrap in the float domain so arbitrarily large finite values stay
		// well-defined.
		m := math.Mod(math.Trunc(f), 256)
		if m < 0 {
			m += 256
		}
		out[i] = byte(m)
	}
	return out, nil
}

// Floats widens seq to float64 samples. The spectral and autocorrelation
// engines treat byte sequences as real-valued signals in this form.
func Floats(seq []byte) []float64 {
	out := make([]float64, len(seq))
	for i, b := range seq {
		out[i] = float64(b)
	}
	return out
}
