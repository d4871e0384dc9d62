//go:build !fastmath

package lowpass

import "math"

func exp(x float64) float64 {
	return math.Exp(x)
}
