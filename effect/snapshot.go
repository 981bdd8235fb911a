package effect

import (
	"image"

	"golang.org/x/image/draw"
)

// Snapshot is an immutable raster copy of the content, rebased so its
// bounds start at (0,0).
type Snapshot struct {
	img *image.RGBA
}

// NewSnapshot copies src. It returns nil for a nil or empty source.
func NewSnapshot(src image.Image) *Snapshot {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Empty() {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Snapshot{img: img}
}

func (s *Snapshot) Width() int { return s.Bounds().Dx() }
func (s *Snapshot) Height() int { return s.Bounds().Dy() }

func (s *Snapshot) Bounds() image.Rectangle {
	if s == nil || s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// Image exposes the pixels for drawing. Callers must not modify them.
func (s *Snapshot) Image() image.Image {
	if s == nil || s.img == nil {
		return nil
	}
	return s.img
}

// Release drops the pixel buffer. A released snapshot is empty.
func (s *Snapshot) Release() {
	if s != nil {
		s.img = nil
	}
}

func (s *Snapshot) Released() bool {
	return s == nil || s.img == nil
}
