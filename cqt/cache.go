package cqt

import (
	"math"

	"github.com/cwbudde/algo-cqt/internal/memo"
	"github.com/cwbudde/algo-cqt/window"
)

// phaseKey identifies a phase factor table by its minimal determining
// parameters.
type phaseKey struct {
	windowLength int
	sampleRate   float64
}

// hannEntry pairs cached Hann coefficients with their sum of squares so
// norm factors reuse the same computation.
type hannEntry struct {
	coeffs     []float64
	sumSquares float64
}

// derivedCache memoizes the expensive pure derivations shared by all
// parameter sets. Entries are append-only and live for the process
// lifetime; the key spaces are bounded by the parameters callers actually
// use. Cached slices are shared and must never be mutated.
type derivedCache struct {
	freqRatio *memo.Table[int, float64]
	qFactor   *memo.Table[int, float64]
	phase     *memo.Table[phaseKey, []float64]
	hann      *memo.Table[int, hannEntry]
}

// derived is the process-wide cache instance. It is initialized eagerly
// (the tables themselves are empty and cheap) and never torn down.
var derived = &derivedCache{
	freqRatio: memo.NewTable[int, float64](),
	qFactor:   memo.NewTable[int, float64](),
	phase:     memo.NewTable[phaseKey, []float64](),
	hann:      memo.NewTable[int, hannEntry](),
}

// freqRatio returns r = 2^(1/B), the geometric step between adjacent bins.
func (c *derivedCache) getFreqRatio(binsPerOctave int) float64 {
	return c.freqRatio.Get(binsPerOctave, func() float64 {
		return math.Pow(2, 1/float64(binsPerOctave))
	})
}

// getQFactor returns Q = 1/(r-1), the constant ratio of center frequency
// to bandwidth shared by all bins.
func (c *derivedCache) getQFactor(binsPerOctave int) float64 {
	return c.qFactor.Get(binsPerOctave, func() float64 {
		return 1 / (c.getFreqRatio(binsPerOctave) - 1)
	})
}

// getPhaseFactors returns phase[n] = -2*pi*n/sampleRate for n in
// [0, windowLength). Multiplying by a center frequency yields the phase
// rotation of that bin's complex analysis window.
func (c *derivedCache) getPhaseFactors(windowLength int, sampleRate float64) []float64 {
	key := phaseKey{windowLength: windowLength, sampleRate: sampleRate}
	return c.phase.Get(key, func() []float64 {
		out := make([]float64, windowLength)
		for n := range out {
			out[n] = -2 * math.Pi * float64(n) / sampleRate
		}
		return out
	})
}

// getHann returns the symmetric Hann window of the given length together
// with its precomputed sum of squares.
func (c *derivedCache) getHann(length int) hannEntry {
	return c.hann.Get(length, func() hannEntry {
		coeffs := window.Generate(window.TypeHann, length)
		return hannEntry{
			coeffs:     coeffs,
			sumSquares: window.SumSquares(coeffs),
		}
	})
}
