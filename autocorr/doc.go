// Package autocorr computes the autocorrelation of a byte sequence: its
// similarity to shifted copies of itself, indexed by shift amount. Peaks
// mark repetition periods.
//
// Two algorithms are provided. They agree on where the peaks sit but not
// on the numbers around them, so results from different modes must not be
// compared value for value.
//
// # Direct mode
//
// Direct slides the sequence over itself and counts agreeing byte
// positions: the value at shift s is N - s - mismatches between the
// overlapping regions, where a mismatch is any position with nonzero XOR.
// Shift 0 is exactly N. The overlap shrinks as s grows, so values taper
// toward zero at large shifts (linear correlation). Cost is O(N^2);
// practical up to tens of kilobytes.
//
// # FFT mode
//
// FFT computes the inverse transform of the squared spectrum magnitude,
// |X|^2, in O(N log N). The transform treats the window as periodic, so
// shifted positions wrap around the end of the sequence (circular
// correlation) and the value at shift 0 is the total signal energy rather
// than N. When N is not an integer multiple of the true repetition period,
// the wraparound misaligns the final partial period and smears energy into
// spurious sidebands around the real peaks. That artifact is inherent to
// the circular method; it is left visible rather than masked by windowing
// or padding, which would change the shift semantics.
package autocorr
