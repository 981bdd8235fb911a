package effect

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultRows              = 10
	DefaultCols              = 20
	DefaultDuration          = 3000 * time.Millisecond
	DefaultGapPx             = 3
	DefaultMinParticleSizePx = 10
	DefaultSpeedMin          = 80.0
	DefaultSpeedMax          = 320.0
	DefaultAngleStartDeg     = -60.0
	DefaultAngleEndDeg       = -30.0
	DefaultWaveWidth         = 0.3
)

var ErrInvalidConfig = errors.New("effect: invalid config")

// Config is supplied once when a Controller is built.
type Config struct {
	Grid GridConfig

	// Duration is the length of the primary progress track.
	Duration time.Duration
	// SplitDuration is the length of the wipe track. Zero means two thirds
	// of Duration.
	SplitDuration time.Duration

	Motion     MotionModel
	Compositor Compositor

	// Seed feeds the default random source. Zero seeds from the clock.
	Seed uint64
}

func DefaultGridConfig() GridConfig {
	return GridConfig{
		Rows:              DefaultRows,
		Cols:              DefaultCols,
		GapPx:             DefaultGapPx,
		MinParticleSizePx: DefaultMinParticleSizePx,
		SpeedMin:          DefaultSpeedMin,
		SpeedMax:          DefaultSpeedMax,
		AngleStartDeg:     DefaultAngleStartDeg,
		AngleEndDeg:       DefaultAngleEndDeg,
		WaveWidth:         DefaultWaveWidth,
	}
}

func DefaultConfig() Config {
	return Config{
		Grid:       DefaultGridConfig(),
		Duration:   DefaultDuration,
		Motion:     DefaultStaggeredMotion(),
		Compositor: NewCutoverCompositor(DefaultTransitionWidth),
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	g := c.Grid
	switch {
	case g.Rows < 1:
		return invalid("rows", g.Rows)
	case g.Cols < 1:
		return invalid("cols", g.Cols)
	case g.GapPx < 0:
		return invalid("gap_px", g.GapPx)
	case g.MinParticleSizePx < 0:
		return invalid("min_particle_size_px", g.MinParticleSizePx)
	case g.SpeedMin < 0 || g.SpeedMax < g.SpeedMin:
		return invalid("speed_range", [2]float64{g.SpeedMin, g.SpeedMax})
	case g.AngleEndDeg < g.AngleStartDeg:
		return invalid("angle_range_deg", [2]float64{g.AngleStartDeg, g.AngleEndDeg})
	case g.WaveWidth < 0 || g.WaveWidth > 1:
		return invalid("wave_width", g.WaveWidth)
	case c.Duration <= 0:
		return invalid("duration", c.Duration)
	case c.SplitDuration < 0:
		return invalid("split_duration", c.SplitDuration)
	}
	if m, ok := c.Motion.(StaggeredMotion); ok && (m.FadeStart < 0 || m.FadeStart > 1) {
		return invalid("fade_start", m.FadeStart)
	}
	switch comp := c.Compositor.(type) {
	case *CutoverCompositor:
		if comp.TransitionWidth < 0 {
			return invalid("transition_width", comp.TransitionWidth)
		}
	case *LayeredCompositor:
		if comp.TransitionWidth < 0 {
			return invalid("transition_width", comp.TransitionWidth)
		}
		if err := validateStops(comp.Stops); err != nil {
			return fmt.Errorf("%w: stops: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, v)
}

// splitDuration resolves the zero default.
func (c Config) splitDuration() time.Duration {
	if c.SplitDuration > 0 {
		return c.SplitDuration
	}
	return c.Duration * 2 / 3
}
