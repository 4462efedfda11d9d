package cqt

import "errors"

// Parameter validation errors returned by [NewParams]. Match with
// [errors.Is]; returned errors may carry additional context.
var (
	// ErrInvalidBinCount reports a non-positive bins-per-octave count.
	ErrInvalidBinCount = errors.New("cqt: bins per octave must be > 0")

	// ErrInvalidFrequencyRange reports a frequency range that is not
	// 0 < minFreq < maxFreq, or non-finite frequency values.
	ErrInvalidFrequencyRange = errors.New("cqt: frequency range must satisfy 0 < min < max")

	// ErrNyquistViolation reports a max frequency at or above half the
	// sample rate, or an invalid sample rate.
	ErrNyquistViolation = errors.New("cqt: max frequency must be below half the sample rate")

	// ErrWindowTooShort reports a window too short to hold one full
	// cycle of the lowest bin's center frequency.
	ErrWindowTooShort = errors.New("cqt: window too short for the lowest frequency bin")
)

// Processing errors returned by [Cqt.Process] and [Cqt.ProcessComplex].
// A failed call leaves the Cqt instance valid for further use.
var (
	// ErrInvalidHopSize reports a non-positive hop size.
	ErrInvalidHopSize = errors.New("cqt: hop size must be > 0")

	// ErrInsufficientSamples reports an input shorter than the analysis
	// window.
	ErrInsufficientSamples = errors.New("cqt: input shorter than the analysis window")
)
