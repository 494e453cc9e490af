// Command bininfo prints statistical summaries of binary data.
//
// Usage:
//
//	bininfo [flags] [file ...]
//
// Without arguments it reads from standard input; "-" also names standard
// input.
//
// Examples:
//
//	bininfo firmware.bin
//	bininfo -top 16 -periods 8 dump.bin
//	bininfo -blocks -blocksize 4096 image.dat
//	bininfo -cmp old.bin new.bin
//	gzip -c report.txt | bininfo -acf direct
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-binstats/autocorr"
	"github.com/cwbudde/algo-binstats/blocks"
	"github.com/cwbudde/algo-binstats/diff"
	"github.com/cwbudde/algo-binstats/spectral"
	"github.com/cwbudde/algo-binstats/stats/entropy"
	"github.com/cwbudde/algo-binstats/stats/freq"
)

type reportOptions struct {
	top       int
	periods   int
	peaks     int
	acfMode   autocorr.Mode
	acfOff    bool
	profile   bool
	blockSize int
}

func main() {
	top := flag.Int("top", 8, "most frequent byte values to print (0 = none)")
	periods := flag.Int("periods", 5, "strongest spectral periods to print (0 = none)")
	peaks := flag.Int("peaks", 5, "strongest autocorrelation shifts to print (0 = none)")
	acf := flag.String("acf", "fft", "autocorrelation mode: fft, direct or off (direct is quadratic)")
	profile := flag.Bool("blocks", false, "print a per-block entropy profile")
	blockSize := flag.Int("blocksize", 0, "block size in bytes for -blocks (0 = automatic)")
	cmp := flag.Bool("cmp", false, "compare exactly two inputs byte- and bit-wise")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bininfo [flags] [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints statistical summaries of binary data.\n")
		fmt.Fprintf(os.Stderr, "Without arguments it reads from standard input.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bininfo firmware.bin\n")
		fmt.Fprintf(os.Stderr, "  bininfo -top 16 -periods 8 dump.bin\n")
		fmt.Fprintf(os.Stderr, "  bininfo -blocks -blocksize 4096 image.dat\n")
		fmt.Fprintf(os.Stderr, "  bininfo -cmp old.bin new.bin\n")
	}
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	if *cmp {
		if len(names) != 2 {
			fmt.Fprintf(os.Stderr, "error: -cmp requires exactly two inputs\n")
			os.Exit(1)
		}
		if err := compare(names[0], names[1]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	mode, off, err := parseACFMode(*acf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := reportOptions{
		top:       *top,
		periods:   *periods,
		peaks:     *peaks,
		acfMode:   mode,
		acfOff:    off,
		profile:   *profile,
		blockSize: *blockSize,
	}

	ok := true
	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}
		data, err := readInput(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			ok = false
			continue
		}
		if err := report(os.Stdout, name, data, opts); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", displayName(name), err)
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

func parseACFMode(s string) (autocorr.Mode, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fft":
		return autocorr.ModeFFT, false, nil
	case "direct":
		return autocorr.ModeDirect, false, nil
	case "off":
		return 0, true, nil
	}
	return 0, false, fmt.Errorf("unknown autocorrelation mode %q (use fft, direct or off)", s)
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return data, nil
	}
	return os.ReadFile(name)
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}

func report(w io.Writer, name string, data []byte, opts reportOptions) error {
	fmt.Fprintf(w, "%s: %d bytes\n", displayName(name), len(data))

	h, err := entropy.Bytes(data)
	if err != nil {
		return err
	}

	table := freq.Count(data)
	distinct := 0
	for _, c := range table {
		if c > 0 {
			distinct++
		}
	}

	fmt.Fprintf(w, "  byte entropy:    %.4f bits\n", h)
	if h2, err := entropy.Digraphs(data); err == nil {
		fmt.Fprintf(w, "  digraph entropy: %.4f bits\n", h2)
	}
	fmt.Fprintf(w, "  distinct values: %d of %d\n", distinct, freq.NumValues)

	if opts.top > 0 {
		printTopValues(w, &table, len(data), opts.top)
	}
	if opts.periods > 0 {
		printPeriods(w, data, opts.periods)
	}
	if !opts.acfOff && opts.peaks > 0 {
		if err := printAutocorrPeaks(w, data, opts.acfMode, opts.peaks); err != nil {
			return err
		}
	}
	if opts.profile {
		if err := printEntropyProfile(w, data, opts.blockSize); err != nil {
			return err
		}
	}
	return nil
}

func printTopValues(w io.Writer, table *freq.Table, total, top int) {
	type valueCount struct {
		value byte
		count uint64
	}

	entries := make([]valueCount, 0, freq.NumValues)
	for v, c := range table {
		if c > 0 {
			entries = append(entries, valueCount{byte(v), c})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].value < entries[j].value
	})
	if top < len(entries) {
		entries = entries[:top]
	}

	fmt.Fprintf(w, "\n  Most frequent values:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Value\tChar\tCount\tFraction\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "  0x%02X\t%s\t%d\t%.6f\n",
			e.value, printable(e.value), e.count, float64(e.count)/float64(total))
	}
	flush(tw)
}

func printPeriods(w io.Writer, data []byte, top int) {
	ps := spectral.PowerSpectrum(data)
	if ps.Len() == 0 {
		return
	}

	idx := make([]int, ps.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if ps.Powers[idx[a]] != ps.Powers[idx[b]] {
			return ps.Powers[idx[a]] > ps.Powers[idx[b]]
		}
		return idx[a] < idx[b]
	})
	if top < len(idx) {
		idx = idx[:top]
	}

	fmt.Fprintf(w, "\n  Strongest periods:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Period [bytes]\tPower\n")
	for _, i := range idx {
		fmt.Fprintf(tw, "  %.2f\t%.4g\n", ps.Periods[i], ps.Powers[i])
	}
	flush(tw)
}

func printAutocorrPeaks(w io.Writer, data []byte, mode autocorr.Mode, top int) error {
	series, err := autocorr.Series(data, mode)
	if err != nil {
		return err
	}
	if len(series) < 2 {
		return nil
	}

	idx := make([]int, 0, len(series)-1)
	for s := 1; s < len(series); s++ {
		idx = append(idx, s)
	}
	sort.Slice(idx, func(a, b int) bool {
		if series[idx[a]] != series[idx[b]] {
			return series[idx[a]] > series[idx[b]]
		}
		return idx[a] < idx[b]
	})
	if top < len(idx) {
		idx = idx[:top]
	}

	ref := series[0]
	fmt.Fprintf(w, "\n  Strongest autocorrelation shifts:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Shift\tValue\tRelative\n")
	for _, s := range idx {
		rel := 0.0
		if ref != 0 {
			rel = series[s] / ref
		}
		fmt.Fprintf(tw, "  %d\t%.4g\t%.4f\n", s, series[s], rel)
	}
	flush(tw)
	return nil
}

func printEntropyProfile(w io.Writer, data []byte, blockSize int) error {
	p, err := blocks.EntropyProfile(data, blocks.Config{BlockSize: blockSize})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n  Entropy per %d-byte block:\n", p.BlockSize)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Offset\tEntropy\n")
	for r, h := range p.Values {
		fmt.Fprintf(tw, "  0x%08X\t%.4f\n", r*p.BlockSize, h)
	}
	flush(tw)
	return nil
}

func compare(nameA, nameB string) error {
	a, err := readInput(nameA)
	if err != nil {
		return err
	}
	b, err := readInput(nameB)
	if err != nil {
		return err
	}

	bitCount, err := diff.Bits(a, b)
	if err != nil {
		return fmt.Errorf("%s vs %s: %w", displayName(nameA), displayName(nameB), err)
	}
	byteCount, err := diff.Bytes(a, b)
	if err != nil {
		return err
	}

	n := uint64(len(a))
	fmt.Printf("%s vs %s: %d bytes\n", displayName(nameA), displayName(nameB), n)
	fmt.Printf("  differing bytes: %d (%s)\n", byteCount, pct(byteCount, n))
	fmt.Printf("  differing bits:  %d (%s)\n", bitCount, pct(bitCount, 8*n))
	return nil
}

func pct(part, whole uint64) string {
	if whole == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.4f%%", 100*float64(part)/float64(whole))
}

func printable(b byte) string {
	if b >= 0x20 && b < 0x7F {
		return string(b)
	}
	return "."
}

func flush(tw *tabwriter.Writer) {
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
