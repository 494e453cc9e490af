package testutil

import (
	"bytes"
	"testing"
)

func TestRandomBytesDeterministic(t *testing.T) {
	a := RandomBytes(42, 1024)
	b := RandomBytes(42, 1024)
	if len(a) != 1024 {
		t.Fatalf("len = %d, want 1024", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different sequences")
	}
	if bytes.Equal(a, RandomBytes(43, 1024)) {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestAscendingWraps(t *testing.T) {
	s := Ascending(300)
	if s[0] != 0 || s[255] != 255 {
		t.Fatalf("s[0] = %d, s[255] = %d", s[0], s[255])
	}
	if s[256] != 0 || s[299] != 43 {
		t.Fatalf("expected wrap at 256, got s[256] = %d, s[299] = %d", s[256], s[299])
	}
}

func TestTile(t *testing.T) {
	s := Tile([]byte{1, 2, 3}, 7)
	want := []byte{1, 2, 3, 1, 2, 3, 1}
	if !bytes.Equal(s, want) {
		t.Fatalf("got %v, want %v", s, want)
	}
}

func TestNoiseRange(t *testing.T) {
	s := Noise(7, 4096)
	for i, v := range s {
		if v < -1 || v >= 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d := MaxAbsDiff(t, []float64{1, 2, 3}, []float64{1, 2.5, 2})
	if d != 1 {
		t.Fatalf("got %v, want 1", d)
	}
}
