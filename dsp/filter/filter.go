package filter

import "github.com/cwbudde/algo-smooth/dsp/core"

// Filter is a stateful streaming filter over samples of type F.
type Filter[F core.Float] interface {
	// Update consumes one sample and returns the new filtered value.
	Update(x F) F
	// Value returns the most recent Update result without consuming input.
	Value() F
	// Reset returns the filter to its zero "no signal seen" state.
	// Configuration is kept.
	Reset()
}

// ProcessBlock filters buf in place, one Update per element.
func ProcessBlock[F core.Float](f Filter[F], buf []F) {
	for i, x := range buf {
		buf[i] = f.Update(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func ProcessBlockTo[F core.Float](f Filter[F], dst, src []F) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.Update(x)
	}
}
