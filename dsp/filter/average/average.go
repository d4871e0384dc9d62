package average

import "github.com/cwbudde/algo-smooth/dsp/core"

// Filter is a moving-average filter.
type Filter[F core.Float] struct {
	window  []F
	index   int
	sum     F
	average F
}

// New returns a moving average over n samples. n < 1 is treated as 1,
// which makes the filter a pass-through.
func New[F core.Float](n int) *Filter[F] {
	if n < 1 {
		n = 1
	}

	return &Filter[F]{window: make([]F, n)}
}

// Len returns the window length.
func (f *Filter[F]) Len() int { return len(f.window) }

// Update replaces the oldest sample with x and returns the window mean.
func (f *Filter[F]) Update(x F) F {
	f.sum += x - f.window[f.index]
	f.window[f.index] = x

	f.index++
	if f.index == len(f.window) {
		f.index = 0
		// Recompute once per wrap so rounding in the running sum
		// cannot accumulate.
		f.sum = sum(f.window)
	}

	f.average = f.sum / F(len(f.window))

	return f.average
}

// Value returns the last average.
func (f *Filter[F]) Value() F { return f.average }

// Reset zeroes the window.
func (f *Filter[F]) Reset() {
	core.Zero(f.window)
	f.index = 0
	f.sum = 0
	f.average = 0
}

// ProcessBlock filters buf in place.
func (f *Filter[F]) ProcessBlock(buf []F) {
	for i, x := range buf {
		buf[i] = f.Update(x)
	}
}

func sum[F core.Float](buf []F) F {
	var s F
	for _, v := range buf {
		s += v
	}
	return s
}
