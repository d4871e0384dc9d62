package registry

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/filter/lowpass"
	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + k.String() + " ")
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if got, err := ParseKind("OneEuro"); err != nil || got != KindOneEuro {
		t.Fatalf("ParseKind(OneEuro) = %v, %v", got, err)
	}

	if _, err := ParseKind("kalman"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(kalman) error = %v, want ErrUnknownKind", err)
	}
}

func TestKindsSorted(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 5 {
		t.Fatalf("len(Kinds()) = %d, want 5", len(kinds))
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1].String() >= kinds[i].String() {
			t.Fatalf("Kinds() not sorted: %v", kinds)
		}
	}
}

func TestNewBuildsEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		f, err := New(DefaultSpec(k))
		if err != nil {
			t.Fatalf("New(%v) error = %v", k, err)
		}
		for range 1000 {
			f.Update(1)
		}
		if y := f.Value(); y < 0.99 || y > 1.01 {
			t.Fatalf("%v: Value() = %v after constant input, want ~1", k, y)
		}
		f.Reset()
		if f.Value() != 0 {
			t.Fatalf("%v: Value() after Reset = %v", k, f.Value())
		}
	}
}

func TestNewConcreteTypes(t *testing.T) {
	f, err := New(Spec{Kind: KindLowPass, CutoffHz: 2, DeltaTime: 0.01})
	if err != nil {
		t.Fatal(err)
	}
	lp, ok := f.(*lowpass.LowPass[float64])
	if !ok || lp.CutoffHz() != 2 {
		t.Fatalf("New(lowpass) = %T", f)
	}

	f, err = New(Spec{Kind: KindOneEuro, CutoffHz: 1, DeltaTime: 0.01, Beta: 0.1, DerivativeCutoffHz: 3})
	if err != nil {
		t.Fatal(err)
	}
	oe, ok := f.(*oneeuro.Filter[float64])
	if !ok || oe.DerivativeCutoffHz() != 3 || oe.Beta() != 0.1 {
		t.Fatalf("New(oneeuro) = %T", f)
	}

	f, _ = New(Spec{Kind: KindOneEuro, CutoffHz: 1, DeltaTime: 0.01})
	if oe := f.(*oneeuro.Filter[float64]); oe.DerivativeCutoffHz() != oneeuro.DefaultDerivativeCutoffHz {
		t.Fatalf("DerivativeCutoffHz() = %v, want default", oe.DerivativeCutoffHz())
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(Spec{Kind: Kind(42)}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("New(42) error = %v, want ErrUnknownKind", err)
	}
	if Kind(42).String() != "unknown" {
		t.Fatalf("String() = %q", Kind(42).String())
	}
}
