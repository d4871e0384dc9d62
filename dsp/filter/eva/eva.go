package eva

import "github.com/cwbudde/algo-smooth/dsp/core"

// DefaultBeta replaces out-of-range beta values.
const DefaultBeta = 0.5

// Filter is an exponentially weighted average.
type Filter[F core.Float] struct {
	beta       F
	complement F
	output     F
}

// New returns a filter with the given beta weight. See SetBeta.
func New[F core.Float](beta F) *Filter[F] {
	f := &Filter[F]{}
	f.SetBeta(beta)
	return f
}

// SetBeta sets the weight of the previous output. Values outside [0, 1)
// select DefaultBeta. The output is kept.
func (f *Filter[F]) SetBeta(beta F) {
	if !(beta >= 0 && beta < 1) {
		beta = DefaultBeta
	}

	f.beta = beta
	f.complement = 1 - beta
}

// Beta returns the weight of the previous output.
func (f *Filter[F]) Beta() F { return f.beta }

// Update filters one sample.
func (f *Filter[F]) Update(x F) F {
	f.output = f.output*f.beta + x*f.complement
	return f.output
}

// Value returns the last filtered value.
func (f *Filter[F]) Value() F { return f.output }

// Reset zeroes the output.
func (f *Filter[F]) Reset() { f.output = 0 }
