package cqt_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cqt/cqt"
)

func Example() {
	// Five octaves from A1 to A6, semitone resolution.
	params, err := cqt.NewParams(55, 1760, 12, 8000, 1024)
	if err != nil {
		panic(err)
	}

	transform, err := cqt.New(params)
	if err != nil {
		panic(err)
	}

	samples := make([]float64, 8000)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 8000)
	}

	features, err := transform.Process(samples, 256)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d frames x %d bins\n", len(features), len(features[0]))
	// Output:
	// 28 frames x 60 bins
}

func ExampleParams_BinSpec() {
	params, err := cqt.NewParams(55, 1760, 12, 8000, 1024)
	if err != nil {
		panic(err)
	}

	spec := params.BinSpec(24)
	fmt.Printf("bin %d: %.0f Hz, %d samples\n", spec.Index, spec.CenterFreq, spec.WindowLength)
	// Output:
	// bin 24: 220 Hz, 612 samples
}
