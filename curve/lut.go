package curve

import (
	"errors"
	"fmt"

	"github.com/milk9111/disintegrate/common"
)

// LUTSize is the default number of samples taken when baking a curve.
const LUTSize = 256

var ErrFlatCurve = errors.New("curve: f(1) must be greater than f(0)")

// LUT is a curve baked into evenly spaced samples and evaluated with linear
// interpolation. Baking normalizes the samples onto [0,1] and forces them to
// be non-decreasing.
type LUT struct {
	samples []float64
}

// Bake samples c at n evenly spaced points.
func Bake(c Curve, n int) (*LUT, error) {
	return BakeFunc(func(t float64) (float64, error) { return c.Eval(t), nil }, n)
}

// BakeFunc samples a fallible function; the first error aborts baking.
func BakeFunc(f func(t float64) (float64, error), n int) (*LUT, error) {
	if n < 2 {
		n = LUTSize
	}
	raw := make([]float64, n)
	for i := range raw {
		v, err := f(float64(i) / float64(n-1))
		if err != nil {
			return nil, fmt.Errorf("curve: sample %d: %w", i, err)
		}
		raw[i] = v
	}

	lo, hi := raw[0], raw[n-1]
	if !(hi > lo) {
		return nil, ErrFlatCurve
	}

	samples := make([]float64, n)
	prev := 0.0
	for i, v := range raw {
		s := common.Clamp01((v - lo) / (hi - lo))
		if s < prev {
			s = prev
		}
		samples[i] = s
		prev = s
	}
	samples[0] = 0
	samples[n-1] = 1
	return &LUT{samples: samples}, nil
}

func (l *LUT) Eval(t float64) float64 {
	t = common.Clamp01(t)
	last := len(l.samples) - 1
	pos := t * float64(last)
	idx := int(pos)
	if idx >= last {
		return l.samples[last]
	}
	frac := pos - float64(idx)
	return common.Lerp(l.samples[idx], l.samples[idx+1], frac)
}

func (l *LUT) Len() int { return len(l.samples) }
