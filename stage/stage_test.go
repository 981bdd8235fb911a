package stage

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/disintegrate/effect"
)

var blue = color.RGBA{B: 255, A: 255}

func card(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+2], img.Pix[i+3] = 255, 255
	}
	return img
}

func TestStageCentersContent(t *testing.T) {
	s := New(200, 100, card(50, 20))
	if x, y := s.ContentOffset(); x != 75 || y != 40 {
		t.Fatalf("offset = %d,%d, want 75,40", x, y)
	}
	frame := s.Compose(nil)
	if got := frame.RGBAAt(100, 50); got != blue {
		t.Fatalf("expected content at the center, got %v", got)
	}
	if got := frame.RGBAAt(10, 10); got.A != 0 {
		t.Fatalf("expected transparent background, got %v", got)
	}
	if s.Dirty() {
		t.Fatalf("compose should clear the repaint flag")
	}
}

func TestStageEmptyContent(t *testing.T) {
	s := New(100, 100, nil)
	if w, h := s.ContentSize(); w != 0 || h != 0 {
		t.Fatalf("expected empty content, got %dx%d", w, h)
	}
	if s.RenderContentToSnapshot() != nil {
		t.Fatalf("empty stage must not hand out a snapshot source")
	}

	c := effect.NewController(s, effect.DefaultConfig())
	c.Start()
	if c.State() != effect.StateIdle {
		t.Fatalf("expected idle with no content, got %v", c.State())
	}
}

func TestStageHostsController(t *testing.T) {
	s := New(300, 200, card(120, 60))
	s.Background = color.Black
	cfg := effect.DefaultConfig()
	cfg.Seed = 7
	c := effect.NewController(s, cfg)

	s.Compose(c)
	c.Start()
	if s.ContentVisible() || !s.Dirty() {
		t.Fatalf("start should hide the content and request a repaint")
	}
	if c.Content() != s.ContentRect() {
		t.Fatalf("controller content %v, stage content %v", c.Content(), s.ContentRect())
	}

	frame := s.Compose(c)
	if got := frame.RGBAAt(150, 100); got != blue {
		t.Fatalf("first effect frame should match the content, got %v", got)
	}

	c.Advance(1)
	if !s.ContentVisible() {
		t.Fatalf("completion should restore the content")
	}
	frame = s.Compose(c)
	if got := frame.RGBAAt(150, 100); got != blue {
		t.Fatalf("expected live content after completion, got %v", got)
	}
	if got := frame.RGBAAt(5, 5); got != (color.RGBA{A: 255}) {
		t.Fatalf("expected black background, got %v", got)
	}
}
