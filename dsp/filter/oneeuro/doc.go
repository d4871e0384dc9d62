// Package oneeuro implements the One-Euro adaptive low-pass filter
// (Casiez, Roussel, Vogel 2012).
//
// The filter composes two [lowpass.LowPass] filters. The velocity filter
// smooths the finite-difference derivative of the input at a fixed cutoff.
// The value filter smooths the input itself, and its cutoff is recomputed on
// every sample:
//
//	cutoff = minCutoff + beta * |smoothed velocity|
//
// A slow signal is filtered at minCutoff and comes out heavily smoothed; a
// fast signal raises the cutoff and follows with little lag. With beta = 0 the
// filter is exactly a fixed-cutoff low-pass at minCutoff.
//
// Tuning: set beta to 0 and lower minCutoff until jitter at rest is
// acceptable, then raise beta (start near 0.0001 for raw sensor counts)
// until lag during fast motion is acceptable.
package oneeuro
