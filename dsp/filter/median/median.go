package median

import (
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Filter is a sliding-window median filter.
type Filter[F core.Float] struct {
	window []F // arrival order, ring buffer
	sorted []F
	index  int
}

// New returns a median filter over n samples, zero-initialised.
// n < 1 is treated as 1.
func New[F core.Float](n int) *Filter[F] {
	if n < 1 {
		n = 1
	}

	return &Filter[F]{
		window: make([]F, n),
		sorted: make([]F, n),
	}
}

// Len returns the window length.
func (f *Filter[F]) Len() int { return len(f.window) }

// Update inserts x, evicting the oldest sample, and returns the median.
func (f *Filter[F]) Update(x F) F {
	old := f.window[f.index]
	f.window[f.index] = x

	f.index++
	if f.index == len(f.window) {
		f.index = 0
	}

	j := f.find(old)
	f.sorted[j] = x

	s := f.sorted
	for j > 0 && s[j-1] > s[j] {
		s[j-1], s[j] = s[j], s[j-1]
		j--
	}

	for j < len(s)-1 && s[j+1] < s[j] {
		s[j+1], s[j] = s[j], s[j+1]
		j++
	}

	return f.Value()
}

// find returns the position of v in the sorted window. NaN matches NaN.
func (f *Filter[F]) find(v F) int {
	for i, s := range f.sorted {
		if s == v || (math.IsNaN(float64(s)) && math.IsNaN(float64(v))) {
			return i
		}
	}

	// unreachable while window and sorted hold the same multiset
	return 0
}

// Value returns the current median.
func (f *Filter[F]) Value() F {
	return f.sorted[len(f.sorted)/2]
}

// Reset zeroes the window.
func (f *Filter[F]) Reset() {
	core.Zero(f.window)
	core.Zero(f.sorted)
	f.index = 0
}
