// Package content draws the demo card that the effect disintegrates. It
// renders on the CPU so the same card can feed the interactive demo and the
// headless renderer.
package content

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth  = 360
	DefaultHeight = 220

	padding     = 16
	accentWidth = 6
	lineGap     = 4
)

var (
	DefaultBackground = color.NRGBA{R: 0x2b, G: 0x3a, B: 0x67, A: 0xff}
	DefaultForeground = color.NRGBA{R: 0xf4, G: 0xf1, B: 0xde, A: 0xff}
	DefaultAccent     = color.NRGBA{R: 0xe0, G: 0x7a, B: 0x5f, A: 0xff}
)

// Card is a filled panel with a title, an accent bar and wrapped body text.
type Card struct {
	Width, Height int
	Title         string
	Body          string

	Background color.Color
	Foreground color.Color
	Accent     color.Color
}

func DefaultCard() Card {
	return Card{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Title:      "Disintegrate",
		Body:       "Press Start to break this card into particles that drift up and away. Reset brings it back.",
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		Accent:     DefaultAccent,
	}
}

// Size returns the card dimensions, falling back to the defaults.
func (c Card) Size() (int, int) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// Render draws the card into a new image anchored at (0,0).
func (c Card) Render() *image.RGBA {
	w, h := c.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	draw.Draw(img, img.Bounds(), image.NewUniform(orDefault(c.Background, DefaultBackground)), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, accentWidth, h), image.NewUniform(orDefault(c.Accent, DefaultAccent)), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(orDefault(c.Foreground, DefaultForeground)),
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil() + lineGap
	left := padding + accentWidth
	y := padding + face.Metrics().Ascent.Ceil()

	if c.Title != "" {
		d.Dot = fixed.P(left, y)
		d.DrawString(c.Title)
		y += lineHeight
		draw.Draw(img, image.Rect(left, y-lineHeight/2, w-padding, y-lineHeight/2+1), d.Src, image.Point{}, draw.Over)
		y += lineHeight / 2
	}

	for _, line := range Wrap(d, c.Body, w-left-padding) {
		if y > h-padding {
			break
		}
		d.Dot = fixed.P(left, y)
		d.DrawString(line)
		y += lineHeight
	}
	return img
}

// Wrap breaks text into lines no wider than maxWidth pixels as measured by
// d. A single word wider than maxWidth gets a line of its own.
func Wrap(d *font.Drawer, text string, maxWidth int) []string {
	var (
		lines []string
		cur   string
	)
	limit := fixed.I(maxWidth)
	for _, word := range strings.Fields(text) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && d.MeasureString(next) > limit {
			lines = append(lines, cur)
			next = word
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func orDefault(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
