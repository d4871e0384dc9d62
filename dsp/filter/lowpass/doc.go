// Package lowpass provides a single-pole exponential low-pass filter
// parameterized by a cutoff frequency in Hz and a sampling interval in
// seconds.
//
// The smoothing coefficient is the exact discretization of a continuous RC
// low-pass:
//
//	a = 1 - exp(-dt * 2π * fc)
//	y[n] = y[n-1] + a * (x[n] - y[n-1])
//
// A non-positive cutoff or interval yields a = 0, which freezes the output
// at its current value instead of failing.
//
// [LowPass.Reconfigure] only recomputes the coefficient. The filter output is
// kept, so the filter can be retuned on every sample without discontinuities.
// This is what the One-Euro filter relies on.
//
// Build with -tags fastmath to evaluate the exponential with a polynomial
// approximation.
package lowpass
