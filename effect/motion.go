package effect

import (
	"math"

	"github.com/milk9111/disintegrate/common"
	"github.com/milk9111/disintegrate/curve"
)

// Tick is the input to one motion update.
type Tick struct {
	Progress float64 // primary progress in [0,1]
	Split    float64 // split/wipe progress in [0,1]
	Width    int     // snapshot width swept by the wavefront
}

// MotionModel positions and fades a particle for a tick. Implementations
// must keep alpha non-increasing once fading starts, never move a particle
// back toward its origin, and leave particles at their origin until they
// activate.
type MotionModel interface {
	Update(p *Particle, t Tick)
}

// SimpleMotion starts every particle at once: distance is speed·progress²
// and alpha falls linearly with progress.
type SimpleMotion struct{}

func (SimpleMotion) Update(p *Particle, t Tick) {
	progress := common.Clamp01(t.Progress)
	p.Activated = true
	p.place(p.Speed * progress * progress)
	p.Alpha = alphaOf(1 - progress)
}

// Activation selects what wakes a dormant particle in StaggeredMotion.
type Activation int

const (
	// ActivateByWavefront wakes a particle once the split line, swept across
	// the snapshot width, reaches its source x.
	ActivateByWavefront Activation = iota
	// ActivateByDelay wakes a particle once progress reaches its StartDelay.
	ActivateByDelay
)

func (a Activation) String() string {
	switch a {
	case ActivateByWavefront:
		return "wavefront"
	case ActivateByDelay:
		return "delay"
	default:
		return "unknown"
	}
}

// StaggeredMotion holds each particle dormant until it activates, then
// remaps the remaining global progress onto the particle's own [0,1] range.
// A nil Move or Fade curve falls back to curve.Quad.
type StaggeredMotion struct {
	Activation Activation
	Move       curve.Curve
	Fade       curve.Curve
	// FadeStart is the local progress at which alpha begins to fall.
	FadeStart    float64
	RestingAlpha uint8
}

// DefaultStaggeredMotion launches with a quadratic curve and fades over the
// second half of each particle's flight with a square-root tail.
func DefaultStaggeredMotion() StaggeredMotion {
	return StaggeredMotion{
		Activation:   ActivateByWavefront,
		Move:         curve.Quad,
		Fade:         curve.Sqrt,
		FadeStart:    0.5,
		RestingAlpha: restAlphaOpaque,
	}
}

func (m StaggeredMotion) Update(p *Particle, t Tick) {
	progress := common.Clamp01(t.Progress)
	if !p.Activated && m.reached(p, progress, t) {
		p.Activated = true
		p.ActivationTime = progress
	}
	if !p.Activated {
		p.X, p.Y = p.OriginX, p.OriginY
		p.Alpha = m.RestingAlpha
		return
	}

	local := 1.0
	if p.ActivationTime < 1 {
		local = common.Clamp01((progress - p.ActivationTime) / (1 - p.ActivationTime))
	}
	p.place(p.Speed * eval(m.Move, local))
	p.Alpha = m.alpha(local)
}

func (m StaggeredMotion) reached(p *Particle, progress float64, t Tick) bool {
	if progress >= 1 {
		return true
	}
	switch m.Activation {
	case ActivateByDelay:
		return p.StartDelay <= progress
	default:
		return float64(p.SrcRect.Min.X) <= float64(t.Width)*common.Clamp01(t.Split)
	}
}

func (m StaggeredMotion) alpha(local float64) uint8 {
	fadeStart := common.Clamp01(m.FadeStart)
	if fadeStart >= 1 {
		if local >= 1 {
			return 0
		}
		return m.RestingAlpha
	}
	if local <= fadeStart {
		return m.RestingAlpha
	}
	u := (local - fadeStart) / (1 - fadeStart)
	rest := float64(m.RestingAlpha) / 255
	return alphaOf(rest * (1 - eval(m.Fade, u)))
}

func eval(c curve.Curve, t float64) float64 {
	if c == nil {
		c = curve.Quad
	}
	return common.Clamp01(c.Eval(t))
}

func alphaOf(f float64) uint8 {
	return uint8(math.Round(255 * common.Clamp01(f)))
}
