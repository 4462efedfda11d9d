package cqt

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"golang.org/x/sync/errgroup"
)

// filterbank holds the frequency-domain kernel matrix: one row per bin,
// each row a complex spectrum of the bin's analysis window. Rows are
// immutable after construction and shared read-only by all Process calls.
type filterbank struct {
	numBins int
	size    int
	rows    [][]complex128
}

// buildFilterbank assembles the kernel matrix for the given parameter set.
// Bins are built data-parallel in contiguous chunks; row order is by bin
// index regardless of completion order.
func buildFilterbank(params Params, workers int) (*filterbank, error) {
	numBins := params.NumBins()
	size := params.WindowLength()

	backing := make([]complex128, numBins*size)
	rows := make([][]complex128, numBins)
	for bin := range rows {
		rows[bin] = backing[bin*size : (bin+1)*size]
	}

	// Projections divide out the FFT length so that frequency-domain
	// inner products match their time-domain counterparts.
	invSize := complex(1/float64(size), 0)

	var group errgroup.Group

	for lo, hi := range chunkRange(numBins, workers) {
		group.Go(func() error {
			plan, err := algofft.NewPlan64(size)
			if err != nil {
				return fmt.Errorf("cqt: filterbank FFT plan: %w", err)
			}

			timeBuf := make([]complex128, size)

			for bin := lo; bin < hi; bin++ {
				fillComplexWindow(timeBuf, params, params.BinSpec(bin))

				if err := plan.Forward(rows[bin], timeBuf); err != nil {
					return fmt.Errorf("cqt: filterbank forward FFT for bin %d: %w", bin, err)
				}

				for i := range rows[bin] {
					rows[bin][i] *= invSize
				}
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &filterbank{
		numBins: numBins,
		size:    size,
		rows:    rows,
	}, nil
}

// fillComplexWindow writes the bin's zero-padded complex analysis window
// into dst: a Hann taper of the bin-specific length, rotated by the bin's
// center frequency and scaled to unit energy, centered in the global
// window.
func fillComplexWindow(dst []complex128, params Params, spec BinSpec) {
	for i := range dst {
		dst[i] = 0
	}

	hann := derived.getHann(spec.WindowLength).coeffs
	phase := derived.getPhaseFactors(params.WindowLength(), params.SampleRate())
	offset := (len(dst) - spec.WindowLength) / 2

	for n := 0; n < spec.WindowLength; n++ {
		sin, cos := math.Sincos(phase[n] * spec.CenterFreq)
		amp := hann[n] * spec.NormFactor
		dst[offset+n] = complex(cos*amp, sin*amp)
	}
}

// chunkRange yields [lo, hi) index pairs splitting n units of work into at
// most workers contiguous chunks.
func chunkRange(n, workers int) func(yield func(lo, hi int) bool) {
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	return func(yield func(lo, hi int) bool) {
		for lo := 0; lo < n; lo += chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			if !yield(lo, hi) {
				return
			}
		}
	}
}
