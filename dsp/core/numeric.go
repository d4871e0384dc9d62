package core

import "math"

const defaultEpsilon = 1e-12

// Float is the sample type accepted by every filter in this module.
type Float interface {
	~float32 | ~float64
}

// Positive reports whether x is strictly greater than zero.
// NaN is not positive.
func Positive[F Float](x F) bool {
	return x > 0
}

// Abs returns |x| without a round trip through float64.
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute first, then relative to the larger magnitude.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Long decays toward zero in slow filters otherwise spend time in
// subnormal arithmetic.
func FlushDenormals[F Float](x F) F {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[F Float](x F) bool {
	v := float64(x)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LinearToDB converts a linear amplitude ratio to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
