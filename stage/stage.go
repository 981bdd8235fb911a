// Package stage is a CPU-side effect host: a fixed-size surface with the
// content centered on it. The interactive demo uploads its frames to the GPU
// and the offline renderer encodes them directly.
package stage

import (
	"image"
	"image/color"

	"github.com/milk9111/disintegrate/effect"
	"golang.org/x/image/draw"
)

// Stage implements effect.Host.
type Stage struct {
	Background color.Color

	frame   *image.RGBA
	content *image.RGBA
	visible bool
	dirty   bool
}

var _ effect.Host = (*Stage)(nil)

func New(w, h int, content image.Image) *Stage {
	s := &Stage{
		Background: color.Transparent,
		frame:      image.NewRGBA(image.Rect(0, 0, w, h)),
		visible:    true,
		dirty:      true,
	}
	s.SetContent(content)
	return s
}

// SetContent replaces the live content. A nil image leaves the stage empty.
func (s *Stage) SetContent(img image.Image) {
	s.content = nil
	if img != nil && !img.Bounds().Empty() {
		b := img.Bounds()
		s.content = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(s.content, s.content.Bounds(), img, b.Min, draw.Src)
	}
	s.dirty = true
}

func (s *Stage) ContentSize() (int, int) {
	if s.content == nil {
		return 0, 0
	}
	return s.content.Bounds().Dx(), s.content.Bounds().Dy()
}

// ContentOffset centers the content on the surface.
func (s *Stage) ContentOffset() (int, int) {
	w, h := s.ContentSize()
	b := s.frame.Bounds()
	return (b.Dx() - w) / 2, (b.Dy() - h) / 2
}

func (s *Stage) RenderContentToSnapshot() image.Image {
	if s.content == nil {
		return nil
	}
	return s.content
}

func (s *Stage) SetContentVisible(v bool) {
	if s.visible != v {
		s.visible = v
		s.dirty = true
	}
}

func (s *Stage) RequestRepaint() { s.dirty = true }

func (s *Stage) ContentVisible() bool { return s.visible }
func (s *Stage) Dirty() bool { return s.dirty }
func (s *Stage) Bounds() image.Rectangle { return s.frame.Bounds() }

// ContentRect is where the live content sits on the surface.
func (s *Stage) ContentRect() image.Rectangle {
	x, y := s.ContentOffset()
	w, h := s.ContentSize()
	return image.Rect(x, y, x+w, y+h)
}

// Compose redraws the surface: background, then the live content when it is
// visible, then the running effect. The returned frame is reused by the
// next call.
func (s *Stage) Compose(ctrl *effect.Controller) *image.RGBA {
	draw.Draw(s.frame, s.frame.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
	if s.visible && s.content != nil {
		r := s.ContentRect()
		draw.Draw(s.frame, r, s.content, image.Point{}, draw.Over)
	}
	if ctrl != nil {
		ctrl.Render(s.frame)
	}
	s.dirty = false
	return s.frame
}
