// Package response measures how a streaming filter reacts to test signals.
//
// [Impulse] and [Step] record the time-domain response. [Magnitude] turns the
// impulse response into a magnitude response with an FFT, which is exact for
// the linear filters (lowpass, average, eva) and a small-signal estimate for
// the adaptive and nonlinear ones. [SettlingSamples] counts how long a filter
// needs to follow a step to within a tolerance, the figure of merit that
// separates a One-Euro filter from a fixed low-pass.
//
// All functions reset the filter before and after measuring.
package response
