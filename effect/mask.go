package effect

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/milk9111/disintegrate/common"
)

// GradientStop places Alpha (0..1) at Offset (0..1) along a GradientMask.
type GradientStop struct {
	Offset float64
	Alpha  float64
}

var fadeInStops = []GradientStop{{Offset: 0, Alpha: 0}, {Offset: 1, Alpha: 1}}

// GradientMask is a horizontal alpha ramp across surface x in [From, To],
// interpolated linearly between stops and clamped to the end stops outside
// that range. Without stops it ramps from transparent to opaque.
type GradientMask struct {
	From, To float64
	Stops    []GradientStop
}

// AlphaAt samples the ramp at surface x.
func (g GradientMask) AlphaAt(x float64) float64 {
	stops := g.Stops
	if len(stops) == 0 {
		stops = fadeInStops
	}

	var u float64
	switch {
	case g.To > g.From:
		u = (x - g.From) / (g.To - g.From)
	case x >= g.To:
		u = 1
	}

	if u <= stops[0].Offset {
		return common.Clamp01(stops[0].Alpha)
	}
	for i := 1; i < len(stops); i++ {
		if u > stops[i].Offset {
			continue
		}
		a, b := stops[i-1], stops[i]
		span := b.Offset - a.Offset
		if span <= 0 {
			return common.Clamp01(b.Alpha)
		}
		return common.Clamp01(common.Lerp(a.Alpha, b.Alpha, (u-a.Offset)/span))
	}
	return common.Clamp01(stops[len(stops)-1].Alpha)
}

// Fill rasterizes the ramp into dst over r, sampling pixel centers.
func (g GradientMask) Fill(dst *image.Alpha, r image.Rectangle) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	row := make([]uint8, r.Dx())
	for x := range row {
		row[x] = uint8(math.Round(255 * g.AlphaAt(float64(r.Min.X+x)+0.5)))
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		copy(dst.Pix[i:i+len(row)], row)
	}
}

func invertAlpha(dst, src *image.Alpha, r image.Rectangle) {
	r = r.Intersect(dst.Bounds()).Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		for x := 0; x < r.Dx(); x++ {
			dst.Pix[di+x] = 255 - src.Pix[si+x]
		}
	}
}

// sortStops returns a copy of stops ordered by offset.
func sortStops(stops []GradientStop) []GradientStop {
	out := append([]GradientStop(nil), stops...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

func validateStops(stops []GradientStop) error {
	if len(stops) == 0 {
		return nil
	}
	for i, s := range stops {
		if s.Offset < 0 || s.Offset > 1 || s.Alpha < 0 || s.Alpha > 1 {
			return fmt.Errorf("stop %d (%v, %v) outside [0,1]", i, s.Offset, s.Alpha)
		}
	}
	sorted := sortStops(stops)
	if sorted[0].Alpha != 1 || sorted[len(sorted)-1].Alpha != 0 {
		return fmt.Errorf("stops must start opaque and end transparent")
	}
	return nil
}
