package prefabs

import (
	"fmt"
	"strings"
	"time"

	"github.com/milk9111/disintegrate/curve"
	"github.com/milk9111/disintegrate/effect"
)

// scriptCurvePrefix marks a curve name that refers to scripts/<name>.tengo.
const scriptCurvePrefix = "script:"

// Build resolves s into a validated effect.Config. Curve names are
// looked up in curves; names of the form "script:<name>" compile
// scripts/<name>.tengo instead.
func (s *EffectSpec) Build(curves curve.Registry) (effect.Config, error) {
	cfg := effect.DefaultConfig()
	g := &cfg.Grid

	if s.Rows != 0 {
		g.Rows = s.Rows
	}
	if s.Cols != 0 {
		g.Cols = s.Cols
	}
	if s.GapPx != nil {
		g.GapPx = *s.GapPx
	}
	if s.MinParticleSizePx != nil {
		g.MinParticleSizePx = *s.MinParticleSizePx
	}
	if s.WaveWidth != nil {
		g.WaveWidth = *s.WaveWidth
	}
	if err := pair("speed_range", s.SpeedRange, &g.SpeedMin, &g.SpeedMax); err != nil {
		return effect.Config{}, err
	}
	if err := pair("angle_range_deg", s.AngleRangeDeg, &g.AngleStartDeg, &g.AngleEndDeg); err != nil {
		return effect.Config{}, err
	}

	if s.DurationMs != 0 {
		cfg.Duration = time.Duration(s.DurationMs) * time.Millisecond
	}
	cfg.SplitDuration = time.Duration(s.SplitDurationMs) * time.Millisecond
	cfg.Seed = s.Seed

	motion, err := s.Motion.build(curves)
	if err != nil {
		return effect.Config{}, err
	}
	cfg.Motion = motion

	comp, err := s.Compositor.build()
	if err != nil {
		return effect.Config{}, err
	}
	cfg.Compositor = comp

	if err := cfg.Validate(); err != nil {
		return effect.Config{}, fmt.Errorf("prefabs: effect %q: %w", s.Name, err)
	}
	return cfg, nil
}

func (m MotionSpec) build(curves curve.Registry) (effect.MotionModel, error) {
	switch strings.ToLower(m.Variant) {
	case "simple":
		return effect.SimpleMotion{}, nil
	case "", "staggered":
	default:
		return nil, fmt.Errorf("prefabs: motion variant %q: %w", m.Variant, effect.ErrInvalidConfig)
	}

	sm := effect.DefaultStaggeredMotion()
	switch strings.ToLower(m.Activation) {
	case "", "wavefront":
		sm.Activation = effect.ActivateByWavefront
	case "delay":
		sm.Activation = effect.ActivateByDelay
	default:
		return nil, fmt.Errorf("prefabs: motion activation %q: %w", m.Activation, effect.ErrInvalidConfig)
	}

	var err error
	if m.MoveCurve != "" {
		if sm.Move, err = resolveCurve(curves, m.MoveCurve); err != nil {
			return nil, err
		}
	}
	if m.FadeCurve != "" {
		if sm.Fade, err = resolveCurve(curves, m.FadeCurve); err != nil {
			return nil, err
		}
	}
	if m.FadeStart != nil {
		sm.FadeStart = *m.FadeStart
	}
	if m.RestingAlpha != nil {
		a := *m.RestingAlpha
		if a < 0 || a > 255 {
			return nil, fmt.Errorf("prefabs: resting_alpha %d: %w", a, effect.ErrInvalidConfig)
		}
		sm.RestingAlpha = uint8(a)
	}
	return sm, nil
}

func (c CompositorSpec) build() (effect.Compositor, error) {
	width := effect.DefaultTransitionWidth
	if c.TransitionWidth != nil {
		width = *c.TransitionWidth
	}

	switch strings.ToLower(c.Mode) {
	case "", "cutover":
		return effect.NewCutoverCompositor(width), nil
	case "layered":
		stops := make([]effect.GradientStop, 0, len(c.Stops))
		for _, st := range c.Stops {
			stops = append(stops, effect.GradientStop{Offset: st.Offset, Alpha: st.Alpha})
		}
		return effect.NewLayeredCompositor(width, stops), nil
	default:
		return nil, fmt.Errorf("prefabs: compositor mode %q: %w", c.Mode, effect.ErrInvalidConfig)
	}
}

func resolveCurve(curves curve.Registry, name string) (curve.Curve, error) {
	script, ok := strings.CutPrefix(name, scriptCurvePrefix)
	if !ok {
		if curves == nil {
			curves = curve.Builtins()
		}
		c, err := curves.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %w", err)
		}
		return c, nil
	}

	file := script
	if !strings.HasSuffix(file, ".tengo") {
		file += ".tengo"
	}
	src, err := LoadScript(file)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", file, err)
	}
	lut, err := curve.CompileScript(file, src)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return lut, nil
}

func pair(field string, vals []float64, lo, hi *float64) error {
	switch len(vals) {
	case 0:
		return nil
	case 2:
		*lo, *hi = vals[0], vals[1]
		return nil
	default:
		return fmt.Errorf("prefabs: %s needs two values, got %d: %w", field, len(vals), effect.ErrInvalidConfig)
	}
}
