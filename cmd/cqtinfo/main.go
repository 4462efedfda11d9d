// Command cqtinfo prints the derived bin table of a Constant-Q parameter set.
//
// Usage:
//
//	cqtinfo [flags]
//
// Examples:
//
//	cqtinfo
//	cqtinfo -min 32.7 -max 3951.1 -bins 24 -rate 48000 -window 8192
//	cqtinfo -summary
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-cqt/cqt"
)

func main() {
	minFreq := flag.Float64("min", 32.7, "lowest bin center frequency in Hz")
	maxFreq := flag.Float64("max", 3951.1, "upper frequency bound in Hz")
	bins := flag.Int("bins", 12, "bins per octave")
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	windowLength := flag.Int("window", 4096, "analysis window length in samples")
	summaryOnly := flag.Bool("summary", false, "print only the summary, not the per-bin table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cqtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints derived Constant-Q filterbank properties for a parameter set.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cqtinfo\n")
		fmt.Fprintf(os.Stderr, "  cqtinfo -min 32.7 -max 3951.1 -bins 24 -rate 48000 -window 8192\n")
		fmt.Fprintf(os.Stderr, "  cqtinfo -summary\n")
	}
	flag.Parse()

	params, err := cqt.NewParams(*minFreq, *maxFreq, *bins, *rate, *windowLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(params)

	if !*summaryOnly {
		fmt.Println()
		printBinTable(params)
	}
}

func printSummary(params cqt.Params) {
	fmt.Printf("bins per octave:  %d\n", params.BinsPerOctave())
	fmt.Printf("total bins:       %d\n", params.NumBins())
	fmt.Printf("frequency ratio:  %.6f\n", params.FreqRatio())
	fmt.Printf("Q factor:         %.4f\n", params.QFactor())
	fmt.Printf("window length:    %d samples (%.1f ms at %.0f Hz)\n",
		params.WindowLength(),
		1000*float64(params.WindowLength())/params.SampleRate(),
		params.SampleRate(),
	)
}

func printBinTable(params cqt.Params) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Bin\tCenter [Hz]\tBandwidth [Hz]\tWindow [samples]\tNorm\t\n")
	fmt.Fprintf(tw, "---\t-----------\t--------------\t----------------\t----\t\n")

	for bin := 0; bin < params.NumBins(); bin++ {
		spec := params.BinSpec(bin)
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%d\t%.6f\t\n",
			spec.Index,
			spec.CenterFreq,
			spec.CenterFreq/spec.QFactor,
			spec.WindowLength,
			spec.NormFactor,
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
