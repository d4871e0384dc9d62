package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/average"
	"github.com/cwbudde/algo-smooth/dsp/filter/eva"
	"github.com/cwbudde/algo-smooth/dsp/filter/lowpass"
	"github.com/cwbudde/algo-smooth/dsp/filter/median"
	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
)

// ErrUnknownKind is returned for a kind name or value that has no filter.
var ErrUnknownKind = errors.New("registry: unknown filter kind")

// Kind selects a filter implementation.
type Kind int

const (
	// KindLowPass is lowpass.LowPass.
	KindLowPass Kind = iota
	// KindOneEuro is oneeuro.Filter.
	KindOneEuro
	// KindAverage is average.Filter.
	KindAverage
	// KindEVA is eva.Filter.
	KindEVA
	// KindMedian is median.Filter.
	KindMedian
)

var kindNames = map[Kind]string{
	KindLowPass: "lowpass",
	KindOneEuro: "oneeuro",
	KindAverage: "average",
	KindEVA:     "eva",
	KindMedian:  "median",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns all kinds sorted by name.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].String() < kinds[j].String()
	})
	return kinds
}

// Spec holds the parameters of every kind; each kind reads only its own.
type Spec struct {
	Kind Kind

	DeltaTime          float64 // lowpass, oneeuro
	CutoffHz           float64 // lowpass cutoff, oneeuro minimum cutoff
	Beta               float64 // oneeuro speed coefficient, eva weight
	DerivativeCutoffHz float64 // oneeuro; 0 selects the default
	Window             int     // average, median
}

// DefaultSpec returns parameters suitable for a 100 Hz sensor loop.
func DefaultSpec(kind Kind) Spec {
	s := Spec{
		Kind:               kind,
		DeltaTime:          0.01,
		CutoffHz:           1,
		DerivativeCutoffHz: oneeuro.DefaultDerivativeCutoffHz,
		Window:             5,
	}

	switch kind {
	case KindEVA:
		s.Beta = eva.DefaultBeta
	case KindOneEuro:
		s.Beta = 0.007
	}

	return s
}

// New builds a float64 filter from spec. Only an unknown kind is an error;
// degenerate parameters produce a filter that degrades as documented by its
// package.
func New(spec Spec) (filter.Filter[float64], error) {
	switch spec.Kind {
	case KindLowPass:
		return lowpass.New(spec.CutoffHz, spec.DeltaTime), nil
	case KindOneEuro:
		var opts []oneeuro.Option[float64]
		if spec.DerivativeCutoffHz != 0 {
			opts = append(opts, oneeuro.WithDerivativeCutoff(spec.DerivativeCutoffHz))
		}
		return oneeuro.New(spec.DeltaTime, spec.CutoffHz, spec.Beta, opts...), nil
	case KindAverage:
		return average.New[float64](spec.Window), nil
	case KindEVA:
		return eva.New(spec.Beta), nil
	case KindMedian:
		return median.New[float64](spec.Window), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(spec.Kind))
	}
}
