package smoothing

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/lowpass"
	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestLowPassReducesNoise(t *testing.T) {
	const n = 4000
	reference := testutil.DC(2, n)
	raw := testutil.NoisyDC(17, 2, 0.3, n)

	filtered := make([]float64, n)
	lp := lowpass.New(1.0, 0.01)
	lp.SetState(2) // skip the warm-up ramp from zero
	filter.ProcessBlockTo(lp, filtered, raw)

	s, err := Calculate(raw, filtered, reference)
	if err != nil {
		t.Fatal(err)
	}
	if s.Length != n {
		t.Fatalf("Length = %d, want %d", s.Length, n)
	}
	if s.NoiseReductionDB < 10 {
		t.Fatalf("NoiseReductionDB = %.2f, want >= 10", s.NoiseReductionDB)
	}
	if s.FilteredRMSE >= s.RawRMSE {
		t.Fatalf("FilteredRMSE %v >= RawRMSE %v", s.FilteredRMSE, s.RawRMSE)
	}
	if math.Abs(s.Bias) > 0.02 {
		t.Fatalf("Bias = %v, want ~0", s.Bias)
	}
	if !math.IsNaN(s.LagCorrelation) {
		t.Fatalf("LagCorrelation = %v, want NaN without lag search", s.LagCorrelation)
	}
}

func TestRawRMSEOfUniformNoise(t *testing.T) {
	const n = 20000
	reference := testutil.DC(0, n)
	raw := testutil.DeterministicNoise(3, 1, n)

	s, err := Calculate(raw, raw, reference)
	if err != nil {
		t.Fatal(err)
	}
	// uniform [-1, 1] has RMS 1/sqrt(3)
	if math.Abs(s.RawRMSE-1/math.Sqrt(3)) > 0.01 {
		t.Fatalf("RawRMSE = %v, want ~%v", s.RawRMSE, 1/math.Sqrt(3))
	}
	if s.NoiseReductionDB != 0 {
		t.Fatalf("NoiseReductionDB = %v, want 0 for identical signals", s.NoiseReductionDB)
	}
}

func TestLagDetection(t *testing.T) {
	const n = 500
	reference := testutil.DeterministicSine(2, 100, 1, n)
	delayed := make([]float64, n)
	copy(delayed[3:], reference[:n-3])

	s, err := Calculate(reference, delayed, reference, WithMaxLag(10))
	if err != nil {
		t.Fatal(err)
	}
	if s.Lag != 3 {
		t.Fatalf("Lag = %d, want 3", s.Lag)
	}
	if s.LagCorrelation < 0.999 {
		t.Fatalf("LagCorrelation = %v, want ~1", s.LagCorrelation)
	}
}

func TestOneEuroLagsLessThanLowPass(t *testing.T) {
	const n = 2000
	reference := testutil.DeterministicSine(0.5, 100, 10, n)
	raw := append([]float64(nil), reference...)

	run := func(f filter.Filter[float64]) Stats {
		out := make([]float64, n)
		filter.ProcessBlockTo(f, out, raw)
		s, err := Calculate(raw, out, reference, WithMaxLag(100))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	fixed := run(lowpass.New(0.5, 0.01))
	adaptive := run(oneeuro.New(0.01, 0.5, 0.05))
	if adaptive.Lag >= fixed.Lag {
		t.Fatalf("one-euro lag %d >= low-pass lag %d", adaptive.Lag, fixed.Lag)
	}
}

func TestPerfectFilter(t *testing.T) {
	reference := testutil.Ramp(0, 1, 10)
	raw := testutil.Ramp(1, 1, 10)
	s, err := Calculate(raw, reference, reference)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(s.NoiseReductionDB, 1) {
		t.Fatalf("NoiseReductionDB = %v, want +Inf", s.NoiseReductionDB)
	}
}

func TestCalculateErrors(t *testing.T) {
	if _, err := Calculate(nil, nil, nil); err == nil {
		t.Fatal("expected error for empty input")
	}
	_, err := Calculate([]float64{1, 2}, []float64{1}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestConstantReferenceSkipsLag(t *testing.T) {
	ref := testutil.DC(1, 50)
	s, err := Calculate(ref, ref, ref, WithMaxLag(5), WithMaxLag(-2))
	if err != nil {
		t.Fatal(err)
	}
	if s.Lag != 0 || !math.IsNaN(s.LagCorrelation) {
		t.Fatalf("Lag = %d corr = %v, want 0/NaN for constant signals", s.Lag, s.LagCorrelation)
	}
}
