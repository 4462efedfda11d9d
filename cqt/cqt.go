package cqt

import (
	"fmt"
	"runtime"

	algofft "github.com/MeKo-Christian/algo-fft"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-cqt/spectrum"
)

// Option configures a Cqt instance.
type Option func(*config)

type config struct {
	workers int
}

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of goroutines used for filterbank
// construction and frame processing. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// Cqt applies the Constant-Q Transform defined by a parameter set.
//
// Construction builds the filterbank once; the instance is immutable
// afterwards and safe for concurrent Process calls.
type Cqt struct {
	params  Params
	fb      *filterbank
	workers int
}

// New builds a Cqt instance for the given validated parameters.
//
// Construction is fallible: filterbank assembly errors (for example FFT
// plan failures) are returned and no partially built instance escapes.
func New(params Params, opts ...Option) (*Cqt, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fb, err := buildFilterbank(params, cfg.workers)
	if err != nil {
		return nil, err
	}

	return &Cqt{
		params:  params,
		fb:      fb,
		workers: cfg.workers,
	}, nil
}

// Params returns the parameter set the instance was built with.
func (c *Cqt) Params() Params { return c.params }

// NumBins returns the total bin count of the output feature matrix.
func (c *Cqt) NumBins() int { return c.fb.numBins }

// NumFrames returns the number of frames Process would produce for an
// input of the given length, or 0 if the input is too short.
func (c *Cqt) NumFrames(sampleCount, hopSize int) int {
	if hopSize <= 0 || sampleCount < c.params.windowLength {
		return 0
	}
	return 1 + (sampleCount-c.params.windowLength)/hopSize
}

// Process computes the magnitude feature matrix of samples.
//
// The result is frame-major: out[frame][bin] = |projection| of the
// frame's spectrum onto the bin's kernel. Frames advance by hopSize
// samples and overlap when hopSize is smaller than the window length.
//
// The call fails atomically: on any error no partial matrix is returned
// and the instance remains valid for further calls.
func (c *Cqt) Process(samples []float64, hopSize int) ([][]float64, error) {
	frames, err := c.ProcessComplex(samples, hopSize)
	if err != nil {
		return nil, err
	}
	return spectrum.MagnitudeFrames(frames), nil
}

// ProcessComplex computes the complex feature matrix of samples, with the
// same framing and ordering contract as [Cqt.Process].
func (c *Cqt) ProcessComplex(samples []float64, hopSize int) ([][]complex128, error) {
	if hopSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHopSize, hopSize)
	}

	size := c.params.windowLength
	if len(samples) < size {
		return nil, fmt.Errorf("%w: %d < %d", ErrInsufficientSamples, len(samples), size)
	}

	numFrames := 1 + (len(samples)-size)/hopSize
	numBins := c.fb.numBins

	backing := make([]complex128, numFrames*numBins)
	out := make([][]complex128, numFrames)
	for frame := range out {
		out[frame] = backing[frame*numBins : (frame+1)*numBins]
	}

	var group errgroup.Group

	// Contiguous frame ranges per worker, each writing only its own
	// output rows; frame order in the result is positional, so no
	// reordering can occur regardless of completion order. Per-frame
	// accumulation is sequential, keeping results bit-identical across
	// worker counts.
	for lo, hi := range chunkRange(numFrames, c.workers) {
		group.Go(func() error {
			plan, err := algofft.NewPlan64(size)
			if err != nil {
				return fmt.Errorf("cqt: process FFT plan: %w", err)
			}

			timeBuf := make([]complex128, size)
			specBuf := make([]complex128, size)

			for frame := lo; frame < hi; frame++ {
				start := frame * hopSize
				for i, v := range samples[start : start+size] {
					timeBuf[i] = complex(v, 0)
				}

				if err := plan.Forward(specBuf, timeBuf); err != nil {
					return fmt.Errorf("cqt: forward FFT for frame %d: %w", frame, err)
				}

				projectFrame(out[frame], specBuf, c.fb.rows)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// projectFrame writes the inner product of the frame spectrum with each
// conjugated kernel row into dst, one coefficient per bin.
func projectFrame(dst, spec []complex128, rows [][]complex128) {
	for bin, row := range rows {
		var acc complex128
		for i, s := range spec {
			k := row[i]
			acc += s * complex(real(k), -imag(k))
		}
		dst[bin] = acc
	}
}
