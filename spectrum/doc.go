// Package spectrum provides magnitude, power, and phase extraction from
// complex spectrum bins.
//
// The package intentionally does not implement FFT itself. It operates on
// complex bins produced by external FFT backends and on the frame-major
// complex matrices produced by the cqt package.
package spectrum
