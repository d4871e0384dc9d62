//go:build fastmath

package lowpass

import "github.com/meko-christian/algo-approx"

// exp evaluates e^x with algo-approx. Accuracy is good enough for filter
// coefficients, which are recomputed on every One-Euro update.
func exp(x float64) float64 {
	return approx.FastExp(x)
}
