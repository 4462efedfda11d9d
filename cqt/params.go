package cqt

import (
	"fmt"
	"math"
)

// Params holds a validated, immutable Constant-Q parameter set.
//
// Construct with [NewParams]; the zero value is not usable. All methods
// are read-only and safe for concurrent use.
type Params struct {
	minFreq       float64
	maxFreq       float64
	binsPerOctave int
	sampleRate    float64
	windowLength  int

	numBins   int
	freqRatio float64
	qFactor   float64
}

// NewParams validates the five tuning parameters and derives the shared
// per-set quantities.
//
// binsPerOctave is the octave subdivision count; the total number of bins
// spanning [minFreq, maxFreq] is ceil(binsPerOctave * log2(maxFreq/minFreq)),
// which keeps every center frequency strictly below maxFreq.
//
// windowLength is in samples and is rounded up to the next power of two.
// After rounding it must hold at least one full cycle of minFreq, i.e.
// windowLength >= sampleRate/minFreq.
//
// Checks run in order and stop at the first failure: bin count, frequency
// range, Nyquist bound, window length.
func NewParams(minFreq, maxFreq float64, binsPerOctave int, sampleRate float64, windowLength int) (Params, error) {
	if binsPerOctave <= 0 {
		return Params{}, fmt.Errorf("%w: %d", ErrInvalidBinCount, binsPerOctave)
	}

	if !isFinitePositive(minFreq) || !(maxFreq > minFreq) || math.IsNaN(maxFreq) || math.IsInf(maxFreq, 0) {
		return Params{}, fmt.Errorf("%w: min %g, max %g", ErrInvalidFrequencyRange, minFreq, maxFreq)
	}

	if !isFinitePositive(sampleRate) || maxFreq >= sampleRate/2 {
		return Params{}, fmt.Errorf("%w: max %g, sample rate %g", ErrNyquistViolation, maxFreq, sampleRate)
	}

	if windowLength <= 0 {
		return Params{}, fmt.Errorf("%w: %d", ErrWindowTooShort, windowLength)
	}

	windowLength = nextPowerOfTwo(windowLength)

	minWindow := int(math.Ceil(sampleRate / minFreq))
	if windowLength < minWindow {
		return Params{}, fmt.Errorf("%w: %d < %d", ErrWindowTooShort, windowLength, minWindow)
	}

	return Params{
		minFreq:       minFreq,
		maxFreq:       maxFreq,
		binsPerOctave: binsPerOctave,
		sampleRate:    sampleRate,
		windowLength:  windowLength,
		numBins:       int(math.Ceil(float64(binsPerOctave) * math.Log2(maxFreq/minFreq))),
		freqRatio:     derived.getFreqRatio(binsPerOctave),
		qFactor:       derived.getQFactor(binsPerOctave),
	}, nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// MinFreq returns the lowest bin's center frequency in Hz.
func (p Params) MinFreq() float64 { return p.minFreq }

// MaxFreq returns the upper frequency bound in Hz. Every center frequency
// is strictly below it.
func (p Params) MaxFreq() float64 { return p.maxFreq }

// BinsPerOctave returns the octave subdivision count.
func (p Params) BinsPerOctave() int { return p.binsPerOctave }

// SampleRate returns the sample rate in Hz.
func (p Params) SampleRate() float64 { return p.sampleRate }

// WindowLength returns the analysis window length in samples, after
// power-of-two rounding.
func (p Params) WindowLength() int { return p.windowLength }

// NumBins returns the total bin count spanning [MinFreq, MaxFreq).
func (p Params) NumBins() int { return p.numBins }

// FreqRatio returns r = 2^(1/BinsPerOctave), the geometric step between
// adjacent center frequencies.
func (p Params) FreqRatio() float64 { return p.freqRatio }

// QFactor returns the constant center-frequency-to-bandwidth ratio shared
// by all bins.
func (p Params) QFactor() float64 { return p.qFactor }

// CenterFreq returns the center frequency of the given bin,
// MinFreq * FreqRatio^bin.
func (p Params) CenterFreq(bin int) float64 {
	return p.minFreq * math.Pow(p.freqRatio, float64(bin))
}

// BinSpec describes the derived analysis properties of one bin. Values
// are pure functions of the parameter set and the bin index.
type BinSpec struct {
	// Index is the 0-based bin ordinal.
	Index int
	// CenterFreq is the bin's center frequency in Hz.
	CenterFreq float64
	// QFactor is the center-frequency-to-bandwidth ratio. Identical
	// across all bins of a parameter set.
	QFactor float64
	// WindowLength is the bin-specific analysis window length in
	// samples: ceil(QFactor*sampleRate/CenterFreq), clamped to the
	// global window length. Lower bins get longer windows.
	WindowLength int
	// NormFactor scales the bin's kernel to unit energy,
	// 1/sqrt(sum(hann^2)), keeping bin energies comparable despite
	// differing window lengths.
	NormFactor float64
}

// BinSpec returns the derived analysis properties of the given bin.
func (p Params) BinSpec(bin int) BinSpec {
	centerFreq := p.CenterFreq(bin)

	length := int(math.Ceil(p.qFactor * p.sampleRate / centerFreq))
	if length > p.windowLength {
		length = p.windowLength
	}
	if length < 2 {
		length = 2
	}

	return BinSpec{
		Index:        bin,
		CenterFreq:   centerFreq,
		QFactor:      p.qFactor,
		WindowLength: length,
		NormFactor:   1 / math.Sqrt(derived.getHann(length).sumSquares),
	}
}
