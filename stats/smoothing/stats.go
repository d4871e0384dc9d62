package smoothing

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when raw, filtered and reference differ in length.
var ErrLengthMismatch = errors.New("smoothing: signal lengths differ")

// Stats compares a raw and a filtered signal against a clean reference.
type Stats struct {
	Length           int
	RawRMSE          float64 // RMS of raw - reference
	FilteredRMSE     float64 // RMS of filtered - reference
	NoiseReductionDB float64 // 20*log10(RawRMSE / FilteredRMSE)
	Bias             float64 // mean of filtered - reference
	ResidualStdDev   float64 // sample standard deviation of filtered - reference
	Lag              int     // samples the filtered signal trails the reference
	LagCorrelation   float64 // correlation at Lag; NaN when not searched
}

// Option configures Calculate.
type Option func(*config)

type config struct {
	maxLag int
}

// WithMaxLag searches lags 0..n samples for the best alignment between the
// reference and the filtered signal. Negative values are ignored.
func WithMaxLag(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.maxLag = n
		}
	}
}

// Calculate computes Stats for equally long raw, filtered and reference
// signals.
func Calculate(raw, filtered, reference []float64, opts ...Option) (Stats, error) {
	n := len(reference)
	if n == 0 {
		return Stats{}, errors.New("smoothing: empty signal")
	}

	if len(raw) != n || len(filtered) != n {
		return Stats{}, fmt.Errorf("%w: raw=%d filtered=%d reference=%d", ErrLengthMismatch, len(raw), len(filtered), n)
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rawResidual := residual(raw, reference)
	filteredResidual := residual(filtered, reference)

	s := Stats{
		Length:         n,
		RawRMSE:        rms(rawResidual),
		FilteredRMSE:   rms(filteredResidual),
		LagCorrelation: math.NaN(),
	}
	s.Bias, s.ResidualStdDev = stat.MeanStdDev(filteredResidual, nil)

	switch {
	case s.FilteredRMSE == 0 && s.RawRMSE == 0:
		s.NoiseReductionDB = 0
	case s.FilteredRMSE == 0:
		s.NoiseReductionDB = math.Inf(1)
	default:
		s.NoiseReductionDB = core.LinearToDB(s.RawRMSE / s.FilteredRMSE)
	}

	if cfg.maxLag > 0 {
		s.Lag, s.LagCorrelation = bestLag(reference, filtered, cfg.maxLag)
	}

	return s, nil
}

// residual returns x - ref.
func residual(x, ref []float64) []float64 {
	out := make([]float64, len(ref))
	vecmath.ScaleBlock(out, ref, -1)
	vecmath.AddBlockInPlace(out, x)
	return out
}

func rms(x []float64) float64 {
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

// bestLag returns the shift d in [0, maxLag] maximising the correlation of
// reference[i] with filtered[i+d]. Shifts whose overlap has no variance are
// skipped; if none qualifies the result is (0, NaN).
func bestLag(reference, filtered []float64, maxLag int) (int, float64) {
	best, bestCorr := 0, math.NaN()
	for d := 0; d <= maxLag && d < len(reference)-1; d++ {
		c := stat.Correlation(reference[:len(reference)-d], filtered[d:], nil)
		if math.IsNaN(c) {
			continue
		}
		if math.IsNaN(bestCorr) || c > bestCorr {
			best, bestCorr = d, c
		}
	}
	return best, bestCorr
}
