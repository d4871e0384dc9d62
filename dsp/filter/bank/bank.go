package bank

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/registry"
)

// ErrFrameLength is returned when a frame does not hold one sample per channel.
var ErrFrameLength = errors.New("bank: frame length does not match channel count")

// Factory builds the filter for channel ch.
type Factory[F core.Float] func(ch int) filter.Filter[F]

// Bank is a fixed set of per-channel filters.
type Bank[F core.Float] struct {
	filters []filter.Filter[F]
}

// New builds a bank of channels filters, calling factory once per channel.
func New[F core.Float](channels int, factory Factory[F]) (*Bank[F], error) {
	if channels < 1 {
		return nil, fmt.Errorf("bank: channel count must be >= 1: %d", channels)
	}

	if factory == nil {
		return nil, errors.New("bank: nil factory")
	}

	filters := make([]filter.Filter[F], channels)
	for ch := range filters {
		f := factory(ch)
		if f == nil {
			return nil, fmt.Errorf("bank: factory returned nil filter for channel %d", ch)
		}
		filters[ch] = f
	}

	return &Bank[F]{filters: filters}, nil
}

// FromSpec builds a bank where every channel uses the same registry spec.
func FromSpec(channels int, spec registry.Spec) (*Bank[float64], error) {
	if _, err := registry.New(spec); err != nil {
		return nil, err
	}

	return New(channels, func(int) filter.Filter[float64] {
		f, _ := registry.New(spec)
		return f
	})
}

// Channels returns the number of channels.
func (b *Bank[F]) Channels() int { return len(b.filters) }

// Channel returns the filter of channel ch.
func (b *Bank[F]) Channel(ch int) filter.Filter[F] { return b.filters[ch] }

// ProcessFrame filters one sample per channel in place.
func (b *Bank[F]) ProcessFrame(frame []F) error {
	if len(frame) != len(b.filters) {
		return fmt.Errorf("%w: got %d, want %d", ErrFrameLength, len(frame), len(b.filters))
	}

	for ch, x := range frame {
		frame[ch] = b.filters[ch].Update(x)
	}

	return nil
}

// ProcessInterleaved filters a block of interleaved frames in place.
// len(buf) must be a multiple of the channel count.
func (b *Bank[F]) ProcessInterleaved(buf []F) error {
	n := len(b.filters)
	if n == 0 {
		return fmt.Errorf("%w: bank has no channels", ErrFrameLength)
	}

	if len(buf)%n != 0 {
		return fmt.Errorf("%w: %d samples is not a multiple of %d channels", ErrFrameLength, len(buf), n)
	}

	for i := 0; i < len(buf); i += n {
		for ch := range n {
			buf[i+ch] = b.filters[ch].Update(buf[i+ch])
		}
	}

	return nil
}

// Values writes the last output of every channel into dst, reusing its
// capacity, and returns it.
func (b *Bank[F]) Values(dst []F) []F {
	dst = core.EnsureLen(dst, len(b.filters))
	for ch, f := range b.filters {
		dst[ch] = f.Value()
	}
	return dst
}

// Reset resets every channel.
func (b *Bank[F]) Reset() {
	for _, f := range b.filters {
		f.Reset()
	}
}
