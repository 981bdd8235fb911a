package effect

import (
	"image"
	"image/color"
	"math"

	"github.com/milk9111/disintegrate/common"
	"golang.org/x/image/draw"
)

// DefaultTransitionWidth is the width in pixels of the soft band at the
// split line.
const DefaultTransitionWidth = 150.0

// Frame is everything a Compositor needs to draw one frame.
type Frame struct {
	Snapshot  *Snapshot
	Particles []Particle
	Split     float64
	// Content is the snapshot's placement on the surface.
	Content image.Rectangle
}

func (f Frame) splitX(extra float64) float64 {
	return float64(f.Content.Min.X) + (float64(f.Content.Dx())+extra)*common.Clamp01(f.Split)
}

// Compositor blends the particle layer with the untouched snapshot. At split
// 0 the whole content area shows the snapshot; at split 1 it shows only
// particles.
type Compositor interface {
	Render(dst draw.Image, f Frame)
}

// CutoverCompositor draws particles left of the split line, fading those in
// the transition band behind it, and draws the snapshot right of the line
// through a clamped gradient mask.
type CutoverCompositor struct {
	TransitionWidth float64

	mask *image.Alpha
}

func NewCutoverCompositor(transitionWidth float64) *CutoverCompositor {
	return &CutoverCompositor{TransitionWidth: transitionWidth}
}

func (c *CutoverCompositor) Render(dst draw.Image, f Frame) {
	src := f.Snapshot.Image()
	if src == nil {
		return
	}
	tw := transitionWidth(c.TransitionWidth)
	splitX := f.splitX(0)

	for i := range f.Particles {
		p := &f.Particles[i]
		if p.X > splitX {
			continue
		}
		drawParticle(dst, src, p, scaleAlpha(p.Alpha, edgeAlpha(p.X, splitX, tw)))
	}

	if f.Split >= 1 {
		return
	}
	clip := image.Rect(int(math.Floor(splitX)), f.Content.Min.Y, f.Content.Max.X, f.Content.Max.Y)
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	c.mask = ensureAlpha(c.mask, f.Content)
	GradientMask{From: splitX - tw, To: splitX}.Fill(c.mask, clip)
	draw.DrawMask(dst, clip, src, clip.Min.Sub(f.Content.Min), c.mask, clip.Min, draw.Over)
}

// DefaultLayeredStops ramp steeply near the split line.
var DefaultLayeredStops = []GradientStop{
	{Offset: 0, Alpha: 1},
	{Offset: 0.5, Alpha: 0.85},
	{Offset: 0.8, Alpha: 0.4},
	{Offset: 1, Alpha: 0},
}

// LayeredCompositor draws every particle into an offscreen layer, keeps the
// layer only where a gradient mask is opaque, and draws the snapshot under
// the inverse mask. The mask's opaque edge sweeps from the content's left
// edge to its right edge, trailed by a TransitionWidth band shaped by Stops.
type LayeredCompositor struct {
	TransitionWidth float64
	Stops           []GradientStop

	layer    *image.RGBA
	composed *image.RGBA
	mask     *image.Alpha
	inverse  *image.Alpha
}

func NewLayeredCompositor(transitionWidth float64, stops []GradientStop) *LayeredCompositor {
	if len(stops) == 0 {
		stops = DefaultLayeredStops
	}
	return &LayeredCompositor{TransitionWidth: transitionWidth, Stops: sortStops(stops)}
}

func (c *LayeredCompositor) Render(dst draw.Image, f Frame) {
	src := f.Snapshot.Image()
	if src == nil {
		return
	}
	b := dst.Bounds()
	c.ensure(b)

	clear(c.layer.Pix)
	for i := range f.Particles {
		p := &f.Particles[i]
		drawParticle(c.layer, src, p, p.Alpha)
	}

	tw := transitionWidth(c.TransitionWidth)
	splitX := f.splitX(tw)
	stops := c.Stops
	if len(stops) == 0 {
		stops = DefaultLayeredStops
	}
	GradientMask{From: splitX - tw, To: splitX, Stops: stops}.Fill(c.mask, b)

	clear(c.composed.Pix)
	draw.DrawMask(c.composed, b, c.layer, b.Min, c.mask, b.Min, draw.Src)

	if f.Split < 1 {
		content := f.Content.Intersect(b)
		invertAlpha(c.inverse, c.mask, content)
		draw.DrawMask(dst, content, src, content.Min.Sub(f.Content.Min), c.inverse, content.Min, draw.Over)
	}
	draw.Draw(dst, b, c.composed, b.Min, draw.Over)
}

func (c *LayeredCompositor) ensure(b image.Rectangle) {
	if c.layer == nil || c.layer.Rect != b {
		c.layer = image.NewRGBA(b)
		c.composed = image.NewRGBA(b)
	}
	c.mask = ensureAlpha(c.mask, b)
	c.inverse = ensureAlpha(c.inverse, b)
}

func ensureAlpha(buf *image.Alpha, r image.Rectangle) *image.Alpha {
	if buf == nil || buf.Rect != r {
		return image.NewAlpha(r)
	}
	return buf
}

func transitionWidth(w float64) float64 {
	if w <= 0 {
		return DefaultTransitionWidth
	}
	return w
}

// edgeAlpha fades particles inside the band [splitX-width, splitX].
func edgeAlpha(x, splitX, width float64) uint8 {
	switch {
	case x <= splitX-width:
		return 255
	case x >= splitX:
		return 0
	default:
		return uint8((splitX - x) / width * 255)
	}
}

func scaleAlpha(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 255)
}

func drawParticle(dst draw.Image, src image.Image, p *Particle, alpha uint8) {
	if alpha == 0 || p.SrcRect.Empty() {
		return
	}
	dp := image.Pt(common.RoundInt(p.X), common.RoundInt(p.Y))
	var opts *draw.Options
	if alpha < 255 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: alpha})}
	}
	draw.Copy(dst, dp, src, p.SrcRect, draw.Over, opts)
}
