package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-vecmath"
)

// Impulse returns n samples of the response to a unit impulse.
func Impulse(f filter.Filter[float64], n int) []float64 {
	if n <= 0 {
		return nil
	}

	f.Reset()
	out := make([]float64, n)
	out[0] = f.Update(1)
	for i := 1; i < n; i++ {
		out[i] = f.Update(0)
	}
	f.Reset()

	return out
}

// Step returns n samples of the response to a unit step.
func Step(f filter.Filter[float64], n int) []float64 {
	if n <= 0 {
		return nil
	}

	f.Reset()
	out := make([]float64, n)
	for i := range out {
		out[i] = f.Update(1)
	}
	f.Reset()

	return out
}

// Magnitude computes |H(f)| from an n-sample impulse response, zero-padded
// to the next power of two. It returns bin frequencies in Hz and magnitudes
// for bins 0..N/2.
func Magnitude(f filter.Filter[float64], n int, sampleRate float64) (freqs, mags []float64, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("response: length must be > 0: %d", n)
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, nil, fmt.Errorf("response: sample rate must be > 0 and finite: %f", sampleRate)
	}

	ir := Impulse(f, n)

	fftSize := nextPowerOf2(n)
	if fftSize < 2 {
		fftSize = 2
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mags = make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	freqs = make([]float64, bins)
	binHz := sampleRate / float64(fftSize)
	for k := range freqs {
		freqs[k] = float64(k) * binHz
	}

	return freqs, mags, nil
}

// SettlingSamples primes f with from until it has converged, then steps the
// input to to and returns the number of samples after which the output stays
// within tolerance*|to-from| of to. It returns -1 if the filter does not
// converge on from, or is still outside the band after maxSamples.
func SettlingSamples(f filter.Filter[float64], from, to, tolerance float64, maxSamples int) int {
	if maxSamples <= 0 {
		return -1
	}

	band := tolerance * math.Abs(to-from)
	if band <= 0 {
		band = tolerance
	}

	f.Reset()
	defer f.Reset()

	primed := false
	for range maxSamples {
		if math.Abs(f.Update(from)-from) <= band {
			primed = true
			break
		}
	}

	if !primed {
		return -1
	}

	lastOutside := -1
	for i := range maxSamples {
		if math.Abs(f.Update(to)-to) > band {
			lastOutside = i
		}
	}

	if lastOutside == maxSamples-1 {
		return -1
	}

	return lastOutside + 1
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
