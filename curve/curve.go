// Package curve provides the easing curves used to shape particle motion and
// fade. Every curve maps normalized progress in [0,1] onto [0,1], is
// non-decreasing, and satisfies f(0)=0 and f(1)=1.
package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/milk9111/disintegrate/common"
)

// Curve is an easing function over normalized progress.
type Curve interface {
	Eval(t float64) float64
}

// Func adapts a plain function to Curve. Input is clamped to [0,1].
type Func func(t float64) float64

func (f Func) Eval(t float64) float64 {
	return f(common.Clamp01(t))
}

var (
	Linear     Curve = Func(func(t float64) float64 { return t })
	Quad       Curve = Func(func(t float64) float64 { return t * t })
	Cubic      Curve = Func(func(t float64) float64 { return t * t * t })
	Sqrt       Curve = Func(math.Sqrt)
	SmoothStep Curve = Func(func(t float64) float64 { return t * t * (3 - 2*t) })
	OutQuad    Curve = Func(func(t float64) float64 { return 1 - (1-t)*(1-t) })
)

var ErrUnknownCurve = errors.New("curve: unknown curve")

// Registry resolves curve names from config.
type Registry map[string]Curve

// Builtins returns a registry holding the named built-in curves.
func Builtins() Registry {
	return Registry{
		"linear":     Linear,
		"quad":       Quad,
		"cubic":      Cubic,
		"sqrt":       Sqrt,
		"smoothstep": SmoothStep,
		"out-quad":   OutQuad,
	}
}

// Lookup returns the curve registered under name. Names are case-insensitive.
func (r Registry) Lookup(name string) (Curve, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := r[key]; ok && c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownCurve, name, strings.Join(r.Names(), ", "))
}

func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
