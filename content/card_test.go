package content

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestCardRender(t *testing.T) {
	c := DefaultCard()
	img := c.Render()
	if img.Bounds().Dx() != DefaultWidth || img.Bounds().Dy() != DefaultHeight {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.At(2, 2); !sameColor(got, DefaultAccent) {
		t.Fatalf("expected accent bar at the left edge, got %v", got)
	}
	if got := img.At(DefaultWidth-2, DefaultHeight-2); !sameColor(got, DefaultBackground) {
		t.Fatalf("expected background in the corner, got %v", got)
	}

	var text int
	for y := 0; y < 40; y++ {
		for x := padding + accentWidth; x < DefaultWidth; x++ {
			if sameColor(img.At(x, y), DefaultForeground) {
				text++
			}
		}
	}
	if text == 0 {
		t.Fatalf("expected title pixels near the top")
	}
}

func TestCardSizeDefaults(t *testing.T) {
	w, h := Card{}.Size()
	if w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("expected default size, got %dx%d", w, h)
	}
	img := Card{Width: 50, Height: 20}.Render()
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 20 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestWrap(t *testing.T) {
	d := &font.Drawer{Face: basicfont.Face7x13}
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "  ", 100, nil},
		{"fits", "one two", 100, []string{"one two"}},
		// 7px glyphs: "one two" is 49px.
		{"breaks", "one two three", 49, []string{"one two", "three"}},
		{"long_word", "unbreakable x", 21, []string{"unbreakable", "x"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Wrap(d, c.text, c.width)
			if strings.Join(got, "|") != strings.Join(c.want, "|") {
				t.Fatalf("Wrap(%q) = %q, want %q", c.text, got, c.want)
			}
		})
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestLoadImage(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "card.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, Card{Width: 40, Height: 30}.Render()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}
