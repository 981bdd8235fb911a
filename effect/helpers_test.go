package effect

import (
	"image"
	"image/color"
	"image/draw"
)

var red = color.RGBA{R: 255, A: 255}

type fakeHost struct {
	w, h     int
	x, y     int
	img      image.Image
	visible  bool
	repaints int
	captures int
}

func newFakeHost(w, h, x, y int) *fakeHost {
	return &fakeHost{w: w, h: h, x: x, y: y, img: solid(w, h, red), visible: true}
}

func (f *fakeHost) ContentSize() (int, int) { return f.w, f.h }
func (f *fakeHost) ContentOffset() (int, int) { return f.x, f.y }
func (f *fakeHost) SetContentVisible(v bool) { f.visible = v }
func (f *fakeHost) RequestRepaint() { f.repaints++ }

func (f *fakeHost) RenderContentToSnapshot() image.Image {
	f.captures++
	return f.img
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// seqRand replays vals in a loop.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func constRand(v float64) *seqRand { return &seqRand{vals: []float64{v}} }
