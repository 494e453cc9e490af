package binseq

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestNormalizeBytesAliases(t *testing.T) {
	in := []byte{1, 2, 3}

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(out) != len(in) || &out[0] != &in[0] {
		t.Errorf("byte input should be returned as-is, got a copy")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []byte
	}{
		{"string", "abc", []byte{0x61, 0x62, 0x63}},
		{"ints", []int{0, 1, 255, 256, 300, -1}, []byte{0, 1, 255, 0, 44, 255}},
		{"int16s", []int16{-300, 212}, []byte{212, 212}},
		{"uint64s", []uint64{0x1FF, 0x100}, []byte{255, 0}},
		{"runes", []rune{'A', 'B' + 256}, []byte{65, 66}},
		{"floats", []float64{2.9, -1.5, 0.0}, []byte{2, 255, 0}},
		{"float32s", []float32{1.25, 300.75}, []byte{1, 44}},
		{"empty", []byte{}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeUnsupported(t *testing.T) {
	for _, input := range []any{nil, 42, []string{"no"}, [][]byte{{1}}} {
		if _, err := Normalize(input); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Normalize(%T): got %v, want ErrUnsupported", input, err)
		}
	}
}

func TestFromIntsWrapping(t *testing.T) {
	got := FromInts([]int{300, -1, -300, 256, -256, 212})
	want := []byte{44, 255, 212, 0, 0, 212}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromFloats(t *testing.T) {
	// 1e10 is an exact multiple of 256, so it wraps to zero.
	got, err := FromFloats([]float64{2.9, -1.5, 255.999, 256.0, 1e10, -0.5})
	if err != nil {
		t.Fatalf("FromFloats: %v", err)
	}
	want := []byte{2, 255, 255, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromFloatsNonInteger(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FromFloats([]float64{0, v}); !errors.Is(err, ErrNotInteger) {
			t.Errorf("FromFloats(%v): got %v, want ErrNotInteger", v, err)
		}
	}
}

func TestFloats(t *testing.T) {
	got := Floats([]byte{0, 128, 255})
	want := []float64{0, 128, 255}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
