package lowpass

import (
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// LowPass is a single-pole IIR low-pass filter.
//
// The zero value is a frozen filter (coefficient 0) with zero output.
type LowPass[F core.Float] struct {
	cutoffHz    F
	deltaTime   F
	coefficient F
	output      F
}

// New returns a LowPass configured for cutoffHz at a sampling interval of
// deltaTime seconds, with zero output.
func New[F core.Float](cutoffHz, deltaTime F) *LowPass[F] {
	lp := &LowPass[F]{}
	lp.Reconfigure(cutoffHz, deltaTime)
	return lp
}

// Coefficient computes the smoothing coefficient for cutoffHz and deltaTime.
// It returns 0 when either argument is non-positive or NaN.
func Coefficient[F core.Float](cutoffHz, deltaTime F) F {
	if !core.Positive(cutoffHz) || !core.Positive(deltaTime) {
		return 0
	}

	return F(1 - exp(-float64(deltaTime)*2*math.Pi*float64(cutoffHz)))
}

// Reconfigure recomputes the smoothing coefficient. The filter output is
// left untouched.
func (lp *LowPass[F]) Reconfigure(cutoffHz, deltaTime F) {
	lp.cutoffHz = cutoffHz
	lp.deltaTime = deltaTime
	lp.coefficient = Coefficient(cutoffHz, deltaTime)
}

// Update filters one sample and returns the new output. Outputs closer to
// zero than 1e-30 are flushed to zero so long decays stay out of subnormals.
func (lp *LowPass[F]) Update(x F) F {
	lp.output = core.FlushDenormals(lp.output + (x-lp.output)*lp.coefficient)
	return lp.output
}

// Value returns the last filtered value.
func (lp *LowPass[F]) Value() F { return lp.output }

// Reset sets the output to zero. The coefficient is kept.
func (lp *LowPass[F]) Reset() { lp.output = 0 }

// Coefficient returns the current smoothing coefficient in [0, 1).
func (lp *LowPass[F]) Coefficient() F { return lp.coefficient }

// CutoffHz returns the cutoff passed to the last Reconfigure.
func (lp *LowPass[F]) CutoffHz() F { return lp.cutoffHz }

// DeltaTime returns the sampling interval passed to the last Reconfigure.
func (lp *LowPass[F]) DeltaTime() F { return lp.deltaTime }

// State returns the filter output so it can be restored later.
func (lp *LowPass[F]) State() F { return lp.output }

// SetState restores a previously saved output.
func (lp *LowPass[F]) SetState(state F) { lp.output = state }

// ProcessBlock filters buf in place. Zero-alloc.
func (lp *LowPass[F]) ProcessBlock(buf []F) {
	a := lp.coefficient
	y := lp.output
	for i, x := range buf {
		y = core.FlushDenormals(y + (x-y)*a)
		buf[i] = y
	}
	lp.output = y
}
