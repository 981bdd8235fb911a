package effect

import (
	"image"
	"math"
)

// Particle is one jittered grid cell. SrcRect addresses the snapshot; X and
// Y are surface coordinates of the particle's top-left corner.
type Particle struct {
	SrcRect image.Rectangle

	OriginX, OriginY float64
	X, Y             float64

	Speed    float64 // total travel in pixels at full local progress
	AngleDeg float64

	// StartDelay is the progress at which delay-based activation fires.
	StartDelay float64

	Activated      bool
	ActivationTime float64

	Alpha uint8
}

func (p *Particle) Width() int { return p.SrcRect.Dx() }
func (p *Particle) Height() int { return p.SrcRect.Dy() }

// Displacement is the distance between the particle and its origin.
func (p *Particle) Displacement() float64 {
	return math.Hypot(p.X-p.OriginX, p.Y-p.OriginY)
}

// place moves the particle distance pixels from its origin along its angle.
func (p *Particle) place(distance float64) {
	rad := p.AngleDeg * math.Pi / 180
	p.X = p.OriginX + distance*math.Cos(rad)
	p.Y = p.OriginY + distance*math.Sin(rad)
}
