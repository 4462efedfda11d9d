// Package cqt implements the Constant-Q Transform, a time-frequency
// decomposition with geometrically spaced frequency bins.
//
// Bins are placed at center frequencies minFreq * r^k with r = 2^(1/B),
// where B is the number of bins per octave. The ratio of center frequency
// to bandwidth (the Q factor) is identical for every bin, which gives the
// transform its logarithmic, perceptually scaled frequency resolution.
//
// Usage follows a validate, build, process sequence:
//
//	params, err := cqt.NewParams(32.7, 3951.1, 12, 44100, 4096)
//	transform, err := cqt.New(params)
//	features, err := transform.Process(samples, 512)
//
// Process returns a frame-major matrix: features[frame][bin]. Frames are
// ordered by input time regardless of internal parallelism, and repeated
// calls on equal input produce bit-identical output for any worker count.
//
// A Cqt instance is immutable after construction and safe for concurrent
// Process calls. Expensive per-parameter derivations (frequency ratios,
// Q factors, phase factors, Hann windows) are memoized process-wide, so
// repeated construction with equal parameters avoids recomputation.
package cqt
