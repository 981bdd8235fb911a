package obj

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface mirrors a CPU frame on the GPU. Frames are uploaded only when the
// caller reports a change.
type Surface struct {
	img *ebiten.Image
}

func NewSurface(w, h int) *Surface {
	return &Surface{img: ebiten.NewImage(w, h)}
}

// Upload copies frame into the surface. The frame must match the surface
// size.
func (s *Surface) Upload(frame *image.RGBA) {
	if frame == nil || frame.Bounds().Size() != s.img.Bounds().Size() {
		return
	}
	s.img.WritePixels(frame.Pix)
}

// Draw draws the surface scaled to fill screen.
func (s *Surface) Draw(screen *ebiten.Image) {
	sb := screen.Bounds()
	b := s.img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(b.Dx()), float64(sb.Dy())/float64(b.Dy()))
	screen.DrawImage(s.img, op)
}
