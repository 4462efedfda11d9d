// Package window provides analysis window generation for constant-Q
// filterbank construction. Only the cosine-sum family relevant to CQT
// kernels is included; the Hann window is the default taper used by the
// cqt package.
package window
