// Command filterinfo prints frequency responses of digital filter designs.
//
// Usage:
//
//	filterinfo [flags] [family ...]
//
// Without arguments it prints info for all design families.
//
// Examples:
//
//	filterinfo butterworth
//	filterinfo -order 6 -shape highpass -w1 0.4 chebyshev1 elliptic
//	filterinfo -shape bandpass -w1 0.25 -w2 0.5 -zpk butterworth
//	filterinfo -stopdb 60 -width 0.05 fir-kaiser
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/dsp/filter/design"
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/window"
)

type params struct {
	order  int
	shape  string
	w1     float64
	w2     float64
	ripple float64
	stopDB float64
	width  float64
}

type familyEntry struct {
	name  string
	build func(p params, shape design.Shape) (*report, error)
}

// report holds one designed filter ready for printing. Exactly one of zpk
// and taps is set.
type report struct {
	size string
	zpk  *design.ZeroPoleGain
	taps []float64
	mag  func(w float64) float64
}

var registry = []familyEntry{
	{"butterworth", buildButterworth},
	{"chebyshev1", buildChebyshev1},
	{"chebyshev2", buildChebyshev2},
	{"elliptic", buildElliptic},
	{"fir-kaiser", buildFIRKaiser},
}

func main() {
	order := flag.Int("order", 4, "filter order for IIR families")
	shapeName := flag.String("shape", "lowpass", "band shape: lowpass, highpass, bandpass, bandstop")
	w1 := flag.Float64("w1", 0.25, "first band edge as a fraction of Nyquist in (0, 1)")
	w2 := flag.Float64("w2", 0.5, "second band edge for bandpass/bandstop")
	ripple := flag.Float64("ripple", 1, "passband ripple in dB (chebyshev1, elliptic)")
	stopDB := flag.Float64("stopdb", 40, "stopband attenuation in dB (chebyshev2, elliptic, fir-kaiser)")
	width := flag.Float64("width", 0.1, "transition width as a fraction of Nyquist (fir-kaiser)")
	all := flag.Bool("all", false, "show all design families")
	list := flag.Bool("list", false, "list available family names")
	zpkDump := flag.Bool("zpk", false, "also print zeros, poles, and gain (or FIR taps)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [family ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints frequency responses of digital filter designs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo butterworth elliptic\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -order 6 -shape highpass -w1 0.4 chebyshev1\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -shape bandpass -w1 0.25 -w2 0.5 -zpk butterworth\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	p := params{
		order:  *order,
		shape:  *shapeName,
		w1:     *w1,
		w2:     *w2,
		ripple: *ripple,
		stopDB: *stopDB,
		width:  *width,
	}

	shape, freqs, err := resolveShape(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching design families\n")
		os.Exit(1)
	}

	printReports(entries, p, shape, freqs, *zpkDump)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []familyEntry {
	byName := make(map[string]familyEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []familyEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown family %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// resolveShape builds the band shape shared by every requested family and
// picks the frequencies of the response table: DC, the band edges and their
// midpoints, and Nyquist.
func resolveShape(p params) (design.Shape, []float64, error) {
	switch strings.ToLower(strings.TrimSpace(p.shape)) {
	case "lowpass":
		s, err := design.NewLowpass(p.w1)
		if err != nil {
			return nil, nil, err
		}
		return s, edgeFreqs(p.w1), nil
	case "highpass":
		s, err := design.NewHighpass(p.w1)
		if err != nil {
			return nil, nil, err
		}
		return s, edgeFreqs(p.w1), nil
	case "bandpass":
		s, err := design.NewBandpass(p.w1, p.w2)
		if err != nil {
			return nil, nil, err
		}
		return s, bandFreqs(p.w1, p.w2), nil
	case "bandstop":
		s, err := design.NewBandstop(p.w1, p.w2)
		if err != nil {
			return nil, nil, err
		}
		return s, bandFreqs(p.w1, p.w2), nil
	default:
		return nil, nil, fmt.Errorf("unknown shape %q (lowpass, highpass, bandpass, bandstop)", p.shape)
	}
}

func edgeFreqs(w float64) []float64 {
	return []float64{0, w / 2, w, (w + 1) / 2, 1}
}

func bandFreqs(w1, w2 float64) []float64 {
	return []float64{0, w1, (w1 + w2) / 2, w2, 1}
}

func buildButterworth(p params, shape design.Shape) (*report, error) {
	proto, err := design.Butterworth(p.order)
	if err != nil {
		return nil, err
	}

	return digitalReport(shape, proto)
}

func buildChebyshev1(p params, shape design.Shape) (*report, error) {
	proto, err := design.Chebyshev1(p.order, p.ripple)
	if err != nil {
		return nil, err
	}

	return digitalReport(shape, proto)
}

func buildChebyshev2(p params, shape design.Shape) (*report, error) {
	proto, err := design.Chebyshev2(p.order, p.stopDB)
	if err != nil {
		return nil, err
	}

	return digitalReport(shape, proto)
}

func buildElliptic(p params, shape design.Shape) (*report, error) {
	proto, err := design.Elliptic(p.order, p.ripple, p.stopDB)
	if err != nil {
		return nil, err
	}

	return digitalReport(shape, proto)
}

func digitalReport(shape design.Shape, proto design.ZeroPoleGain) (*report, error) {
	dig, err := design.DigitalFilter(shape, proto)
	if err != nil {
		return nil, err
	}

	sos, err := design.SOS(dig)
	if err != nil {
		return nil, err
	}

	return &report{
		size: fmt.Sprintf("%d sos", len(sos.Sections)),
		zpk:  &dig,
		mag:  dig.MagnitudeDB,
	}, nil
}

func buildFIRKaiser(p params, shape design.Shape) (*report, error) {
	n, alpha, err := fir.KaiserOrder(p.width, p.stopDB)
	if err != nil {
		return nil, err
	}

	// Highpass and bandstop responses need a center tap.
	switch shape.(type) {
	case design.Highpass, design.Bandstop:
		if n%2 == 0 {
			n++
		}
	}

	coeffs, err := window.Kaiser(n, math.Pi*alpha)
	if err != nil {
		return nil, err
	}

	taps, err := fir.DigitalFilter(shape, fir.Window{Coeffs: coeffs, Scale: true})
	if err != nil {
		return nil, err
	}

	f := fir.New(taps)

	return &report{
		size: fmt.Sprintf("%d taps", len(taps)),
		taps: taps,
		mag: func(w float64) float64 {
			return f.MagnitudeDB(w, 2)
		},
	}, nil
}

func printReports(entries []familyEntry, p params, shape design.Shape, freqs []float64, dump bool) {
	type built struct {
		name string
		rep  *report
	}

	var reports []built
	for _, e := range entries {
		rep, err := e.build(p, shape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", e.name, err)
			continue
		}
		reports = append(reports, built{e.name, rep})
	}

	if len(reports) == 0 {
		fmt.Fprintf(os.Stderr, "error: no design succeeded\n")
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "Family\tSize"
	divider := "------\t----"
	for _, f := range freqs {
		header += fmt.Sprintf("\t|H| dB @ %.3g", f)
		divider += "\t-----------"
	}

	if _, err := fmt.Fprintln(tw, header); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintln(tw, divider); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, b := range reports {
		row := fmt.Sprintf("%s\t%s", b.name, b.rep.size)
		for _, f := range freqs {
			row += fmt.Sprintf("\t%.2f", b.rep.mag(f))
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	if !dump {
		return
	}

	for _, b := range reports {
		printSystem(b.name, b.rep)
	}
}

func printSystem(name string, rep *report) {
	fmt.Printf("\n%s\n", name)

	if rep.zpk == nil {
		fmt.Printf("  taps: %d\n", len(rep.taps))
		for i := 0; i < len(rep.taps); i += 8 {
			line := rep.taps[i:min(len(rep.taps), i+8)]
			parts := make([]string, len(line))
			for j, t := range line {
				parts[j] = fmt.Sprintf("%+.6f", t)
			}
			fmt.Printf("    %s\n", strings.Join(parts, " "))
		}
		return
	}

	fmt.Printf("  gain: %.8g\n", rep.zpk.Gain)

	fmt.Printf("  zeros:\n")
	if len(rep.zpk.Zeros) == 0 {
		fmt.Printf("    (none)\n")
	}
	for _, z := range rep.zpk.Zeros {
		fmt.Printf("    %s\n", fmtComplex(z))
	}

	fmt.Printf("  poles:\n")
	for _, p := range rep.zpk.Poles {
		fmt.Printf("    %s\n", fmtComplex(p))
	}
}

func fmtComplex(c complex128) string {
	return fmt.Sprintf("%+.6f%+.6fi", real(c), imag(c))
}
