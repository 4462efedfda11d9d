package cqt

import (
	"errors"
	"math"
	"testing"
)

const (
	testMinFreq    = 30.0
	testMaxFreq    = 4000.0
	testBins       = 12
	testSampleRate = 44000.0
	testWindow     = 4096
)

func mustParams(t *testing.T) Params {
	t.Helper()
	params, err := NewParams(testMinFreq, testMaxFreq, testBins, testSampleRate, testWindow)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	return params
}

func TestNewParamsDerivedQuantities(t *testing.T) {
	params := mustParams(t)

	wantBins := int(math.Ceil(testBins * math.Log2(testMaxFreq/testMinFreq)))
	if params.NumBins() != wantBins {
		t.Fatalf("NumBins=%d, want %d", params.NumBins(), wantBins)
	}

	wantRatio := math.Pow(2, 1.0/testBins)
	if math.Abs(params.FreqRatio()-wantRatio) > 1e-15 {
		t.Fatalf("FreqRatio=%v, want %v", params.FreqRatio(), wantRatio)
	}

	if math.Abs(params.QFactor()-16.81715374) > 1e-6 {
		t.Fatalf("QFactor=%v, want ~16.817", params.QFactor())
	}

	if params.WindowLength() != testWindow {
		t.Fatalf("WindowLength=%d, want %d (power of two preserved)", params.WindowLength(), testWindow)
	}
}

func TestNewParamsRoundsWindowToPowerOfTwo(t *testing.T) {
	params, err := NewParams(testMinFreq, testMaxFreq, testBins, testSampleRate, 4097)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	if params.WindowLength() != 8192 {
		t.Fatalf("WindowLength=%d, want 8192", params.WindowLength())
	}
}

func TestCenterFreqGeometry(t *testing.T) {
	params := mustParams(t)

	if params.CenterFreq(0) != testMinFreq {
		t.Fatalf("CenterFreq(0)=%v, want %v", params.CenterFreq(0), testMinFreq)
	}

	last := params.CenterFreq(params.NumBins() - 1)
	if !(last < testMaxFreq) {
		t.Fatalf("CenterFreq(last)=%v, must stay below max %v", last, testMaxFreq)
	}

	ratio := params.FreqRatio()
	for bin := 0; bin < params.NumBins()-1; bin++ {
		got := params.CenterFreq(bin+1) / params.CenterFreq(bin)
		if math.Abs(got-ratio)/ratio > 1e-12 {
			t.Fatalf("bin %d: adjacent ratio %v, want %v", bin, got, ratio)
		}
	}
}

func TestBinSpecDerivations(t *testing.T) {
	params := mustParams(t)

	prevLength := params.WindowLength() + 1
	for bin := 0; bin < params.NumBins(); bin++ {
		spec := params.BinSpec(bin)

		if spec.Index != bin {
			t.Fatalf("bin %d: index %d", bin, spec.Index)
		}
		if spec.QFactor != params.QFactor() {
			t.Fatalf("bin %d: QFactor %v differs from shared %v", bin, spec.QFactor, params.QFactor())
		}
		if spec.WindowLength > params.WindowLength() {
			t.Fatalf("bin %d: window %d exceeds global %d", bin, spec.WindowLength, params.WindowLength())
		}
		if spec.WindowLength > prevLength {
			t.Fatalf("bin %d: window %d longer than previous bin's %d", bin, spec.WindowLength, prevLength)
		}
		prevLength = spec.WindowLength

		if !(spec.NormFactor > 0) || math.IsInf(spec.NormFactor, 0) {
			t.Fatalf("bin %d: invalid norm factor %v", bin, spec.NormFactor)
		}
	}

	// The lowest bin would need more samples than the window provides
	// for this parameter set, so it is clamped to the global length.
	if got := params.BinSpec(0).WindowLength; got != params.WindowLength() {
		t.Fatalf("lowest bin window %d, want clamp to %d", got, params.WindowLength())
	}
}

func TestNewParamsValidation(t *testing.T) {
	cases := []struct {
		name    string
		min     float64
		max     float64
		bins    int
		rate    float64
		window  int
		wantErr error
	}{
		{"zero bins", testMinFreq, testMaxFreq, 0, testSampleRate, testWindow, ErrInvalidBinCount},
		{"negative bins", testMinFreq, testMaxFreq, -4, testSampleRate, testWindow, ErrInvalidBinCount},
		{"negative min", -10, testMaxFreq, testBins, testSampleRate, testWindow, ErrInvalidFrequencyRange},
		{"zero min", 0, testMaxFreq, testBins, testSampleRate, testWindow, ErrInvalidFrequencyRange},
		{"max below min", testMinFreq, testMinFreq - 1, testBins, testSampleRate, testWindow, ErrInvalidFrequencyRange},
		{"max equals min", testMinFreq, testMinFreq, testBins, testSampleRate, testWindow, ErrInvalidFrequencyRange},
		{"nan max", testMinFreq, math.NaN(), testBins, testSampleRate, testWindow, ErrInvalidFrequencyRange},
		{"max at nyquist", testMinFreq, testSampleRate / 2, testBins, testSampleRate, testWindow, ErrNyquistViolation},
		{"max above nyquist", testMinFreq, testSampleRate, testBins, testSampleRate, testWindow, ErrNyquistViolation},
		{"zero rate", testMinFreq, testMaxFreq, testBins, 0, testWindow, ErrNyquistViolation},
		{"zero window", testMinFreq, testMaxFreq, testBins, testSampleRate, 0, ErrWindowTooShort},
		{"short window", testMinFreq, testMaxFreq, testBins, testSampleRate, 1024, ErrWindowTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParams(tc.min, tc.max, tc.bins, tc.rate, tc.window)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewParamsChecksShortCircuitInOrder(t *testing.T) {
	// Multiple violations: the bin count check runs first.
	_, err := NewParams(-1, -2, 0, 0, 0)
	if !errors.Is(err, ErrInvalidBinCount) {
		t.Fatalf("got %v, want %v", err, ErrInvalidBinCount)
	}

	// Bin count valid, frequency range invalid before Nyquist.
	_, err = NewParams(-1, -2, testBins, 0, 0)
	if !errors.Is(err, ErrInvalidFrequencyRange) {
		t.Fatalf("got %v, want %v", err, ErrInvalidFrequencyRange)
	}
}

func TestWindowJustLongEnough(t *testing.T) {
	// One full cycle of minFreq needs ceil(44000/30) = 1467 samples,
	// so 2048 passes and 1024 fails.
	if _, err := NewParams(testMinFreq, testMaxFreq, testBins, testSampleRate, 2048); err != nil {
		t.Fatalf("2048-sample window rejected: %v", err)
	}
	if _, err := NewParams(testMinFreq, testMaxFreq, testBins, testSampleRate, 1024); !errors.Is(err, ErrWindowTooShort) {
		t.Fatalf("1024-sample window accepted, want %v", ErrWindowTooShort)
	}
}
