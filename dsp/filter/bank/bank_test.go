package bank

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/eva"
	"github.com/cwbudde/algo-smooth/dsp/filter/lowpass"
	"github.com/cwbudde/algo-smooth/dsp/filter/registry"
)

func lowpassFactory(ch int) filter.Filter[float64] {
	return lowpass.New(1.0+float64(ch), 0.01)
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, lowpassFactory); err == nil {
		t.Fatal("expected error for zero channels")
	}
	if _, err := New[float64](2, nil); err == nil {
		t.Fatal("expected error for nil factory")
	}
	nilFactory := func(int) filter.Filter[float64] { return nil }
	if _, err := New(2, nilFactory); err == nil {
		t.Fatal("expected error for nil filter")
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	b, err := New(3, lowpassFactory)
	if err != nil {
		t.Fatal(err)
	}

	refs := []*lowpass.LowPass[float64]{
		lowpass.New(1.0, 0.01),
		lowpass.New(2.0, 0.01),
		lowpass.New(3.0, 0.01),
	}

	for i := range 50 {
		frame := []float64{float64(i), 0, -float64(i)}
		want := []float64{refs[0].Update(frame[0]), refs[1].Update(frame[1]), refs[2].Update(frame[2])}
		if err := b.ProcessFrame(frame); err != nil {
			t.Fatal(err)
		}
		for ch := range frame {
			if frame[ch] != want[ch] {
				t.Fatalf("tick %d ch %d: got %v, want %v", i, ch, frame[ch], want[ch])
			}
		}
	}

	if got := b.Values(nil); got[1] != 0 {
		t.Fatalf("silent channel = %v, want 0", got[1])
	}
}

func TestProcessFrameLengthMismatch(t *testing.T) {
	b, _ := New(2, lowpassFactory)
	if err := b.ProcessFrame([]float64{1}); !errors.Is(err, ErrFrameLength) {
		t.Fatalf("error = %v, want ErrFrameLength", err)
	}
	if err := b.ProcessInterleaved([]float64{1, 2, 3}); !errors.Is(err, ErrFrameLength) {
		t.Fatalf("error = %v, want ErrFrameLength", err)
	}
}

func TestProcessInterleavedMatchesFrames(t *testing.T) {
	a, _ := New(2, lowpassFactory)
	b, _ := New(2, lowpassFactory)

	buf := []float64{1, 10, 2, 20, 3, 30}
	want := append([]float64(nil), buf...)
	for i := 0; i < len(want); i += 2 {
		if err := a.ProcessFrame(want[i : i+2]); err != nil {
			t.Fatal(err)
		}
	}

	if err := b.ProcessInterleaved(buf); err != nil {
		t.Fatal(err)
	}
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestFromSpec(t *testing.T) {
	b, err := FromSpec(4, registry.DefaultSpec(registry.KindMedian))
	if err != nil {
		t.Fatal(err)
	}
	if b.Channels() != 4 {
		t.Fatalf("Channels() = %d, want 4", b.Channels())
	}
	if b.Channel(0) == b.Channel(1) {
		t.Fatal("channels share a filter instance")
	}

	if _, err := FromSpec(2, registry.Spec{Kind: registry.Kind(99)}); !errors.Is(err, registry.ErrUnknownKind) {
		t.Fatalf("error = %v, want ErrUnknownKind", err)
	}
}

func TestResetAndValues(t *testing.T) {
	b, _ := New(2, func(int) filter.Filter[float32] { return eva.New[float32](0.5) })
	frame := []float32{8, 4}
	_ = b.ProcessFrame(frame)

	vals := b.Values(make([]float32, 0, 2))
	if vals[0] != 4 || vals[1] != 2 {
		t.Fatalf("Values() = %v, want [4 2]", vals)
	}

	b.Reset()
	vals = b.Values(vals)
	if vals[0] != 0 || vals[1] != 0 {
		t.Fatalf("Values() after Reset = %v, want zeros", vals)
	}
}

func TestZeroValueBank(t *testing.T) {
	var b Bank[float64]
	if err := b.ProcessInterleaved([]float64{1, 2}); !errors.Is(err, ErrFrameLength) {
		t.Fatalf("ProcessInterleaved() error = %v, want ErrFrameLength", err)
	}
	if err := b.ProcessFrame([]float64{1}); !errors.Is(err, ErrFrameLength) {
		t.Fatalf("ProcessFrame() error = %v, want ErrFrameLength", err)
	}
}
