package oneeuro

import (
	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/lowpass"
)

// DefaultDerivativeCutoffHz is the cutoff of the velocity filter unless
// WithDerivativeCutoff overrides it.
const DefaultDerivativeCutoffHz = 1.0

// Option configures a Filter at construction.
type Option[F core.Float] func(*config[F])

type config[F core.Float] struct {
	derivCutoffHz F
}

// WithDerivativeCutoff sets the cutoff of the internal velocity low-pass in Hz.
// Non-positive values are accepted and freeze the velocity estimate at zero.
func WithDerivativeCutoff[F core.Float](hz F) Option[F] {
	return func(cfg *config[F]) {
		cfg.derivCutoffHz = hz
	}
}

// Filter is a One-Euro adaptive low-pass filter.
type Filter[F core.Float] struct {
	deltaTime     F
	minCutoffHz   F
	beta          F
	derivCutoffHz F
	cutoffHz      F

	value    lowpass.LowPass[F]
	velocity lowpass.LowPass[F]
	lastRaw  F
}

// New returns a One-Euro filter for a loop that calls Update every deltaTime
// seconds.
func New[F core.Float](deltaTime, minCutoffHz, beta F, opts ...Option[F]) *Filter[F] {
	cfg := config[F]{derivCutoffHz: DefaultDerivativeCutoffHz}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := &Filter[F]{}
	f.SetParametersWithDerivative(deltaTime, minCutoffHz, beta, cfg.derivCutoffHz)
	f.Reset()

	return f
}

// SetParameters changes the sampling interval, minimum cutoff and beta.
// The derivative cutoff is kept. Accumulated state is not reset.
func (f *Filter[F]) SetParameters(deltaTime, minCutoffHz, beta F) {
	f.deltaTime = deltaTime
	f.minCutoffHz = minCutoffHz
	f.beta = beta
	f.cutoffHz = minCutoffHz

	f.value.Reconfigure(minCutoffHz, deltaTime)
	f.velocity.Reconfigure(f.derivCutoffHz, deltaTime)
}

// SetParametersWithDerivative is SetParameters plus a new derivative cutoff.
func (f *Filter[F]) SetParametersWithDerivative(deltaTime, minCutoffHz, beta, derivCutoffHz F) {
	f.derivCutoffHz = derivCutoffHz
	f.SetParameters(deltaTime, minCutoffHz, beta)
}

// Update filters one sample and returns the new output.
func (f *Filter[F]) Update(x F) F {
	// A zero interval would divide by zero; report no motion instead.
	var v F
	if core.Positive(f.deltaTime) {
		v = (x - f.lastRaw) / f.deltaTime
	}

	speed := core.Abs(f.velocity.Update(v))
	f.cutoffHz = f.minCutoffHz + f.beta*speed
	f.value.Reconfigure(f.cutoffHz, f.deltaTime)
	f.lastRaw = x

	return f.value.Update(x)
}

// Value returns the last filtered value.
func (f *Filter[F]) Value() F { return f.value.Value() }

// Reset clears both internal filters and the previous raw sample, and
// returns the adapted cutoff to MinCutoffHz. Parameters are kept.
func (f *Filter[F]) Reset() {
	f.cutoffHz = f.minCutoffHz
	f.value.Reset()
	f.velocity.Reset()
	f.lastRaw = 0
}

// ProcessBlock filters buf in place.
func (f *Filter[F]) ProcessBlock(buf []F) {
	for i, x := range buf {
		buf[i] = f.Update(x)
	}
}

// DeltaTime returns the sampling interval in seconds.
func (f *Filter[F]) DeltaTime() F { return f.deltaTime }

// MinCutoffHz returns the cutoff used for a motionless signal.
func (f *Filter[F]) MinCutoffHz() F { return f.minCutoffHz }

// Beta returns the speed coefficient.
func (f *Filter[F]) Beta() F { return f.beta }

// DerivativeCutoffHz returns the cutoff of the velocity filter.
func (f *Filter[F]) DerivativeCutoffHz() F { return f.derivCutoffHz }

// CutoffHz returns the value-filter cutoff chosen by the last Update,
// or MinCutoffHz before the first Update.
func (f *Filter[F]) CutoffHz() F { return f.cutoffHz }

// Velocity returns the smoothed velocity estimate in units per second.
func (f *Filter[F]) Velocity() F { return f.velocity.Value() }
