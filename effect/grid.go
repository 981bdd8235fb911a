package effect

import (
	"image"

	"github.com/milk9111/disintegrate/common"
)

const (
	sizeJitterMin   = 0.7
	sizeJitterMax   = 1.3
	offsetJitterX   = 0.4
	offsetJitterY   = 0.2
	restAlphaOpaque = 255
)

// GridConfig controls how a snapshot is cut into particles.
type GridConfig struct {
	Rows, Cols        int
	GapPx             int
	MinParticleSizePx int

	SpeedMin, SpeedMax         float64
	AngleStartDeg, AngleEndDeg float64

	// WaveWidth scales StartDelay: the rightmost column starts at WaveWidth.
	WaveWidth float64
}

// Adjusted returns the grid to use for a w×h snapshot. When a cell would be
// smaller than MinParticleSizePx, rows and cols drop to what fits, never
// exceeding the configured counts and never below one. Cells are at least
// one pixel wide and tall whatever the minimum size.
func (g GridConfig) Adjusted(w, h int) GridConfig {
	rows := common.ClampInt(g.Rows, 1, max(h, 1))
	cols := common.ClampInt(g.Cols, 1, max(w, 1))
	minSize := g.MinParticleSizePx
	if minSize > 0 && (cellSize(w, cols) < minSize || cellSize(h, rows) < minSize) {
		cols = common.ClampInt(w/minSize, 1, cols)
		rows = common.ClampInt(h/minSize, 1, rows)
	}
	g.Rows, g.Cols = rows, cols
	return g
}

func cellSize(total, n int) int {
	return common.RoundInt(float64(total) / float64(n))
}

// Generate cuts snap into particles placed at offset on the surface. Cells
// whose jittered rectangle would cross the content's right or bottom edge are
// dropped, as are cells left with no area once the gap is removed. The result
// is ordered row-major.
func Generate(snap *Snapshot, offset image.Point, cfg GridConfig, rng Rand) []Particle {
	w, h := snap.Width(), snap.Height()
	if w <= 0 || h <= 0 || rng == nil {
		return nil
	}

	cfg = cfg.Adjusted(w, h)
	baseW := cellSize(w, cfg.Cols)
	baseH := cellSize(h, cfg.Rows)
	bounds := snap.Bounds()

	particles := make([]Particle, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			pw := common.RoundInt(float64(baseW) * uniform(rng, sizeJitterMin, sizeJitterMax))
			ph := common.RoundInt(float64(baseH) * uniform(rng, sizeJitterMin, sizeJitterMax))
			dx := rng.Float64() * float64(baseW) * offsetJitterX
			dy := rng.Float64() * float64(baseH) * offsetJitterY

			lx := float64(col*baseW) + dx
			ly := float64(row*baseH) + dy
			if lx+float64(pw) > float64(w) || ly+float64(ph) > float64(h) {
				continue
			}

			sw, sh := pw-cfg.GapPx, ph-cfg.GapPx
			if sw < 1 || sh < 1 {
				continue
			}
			sx, sy := common.RoundInt(lx), common.RoundInt(ly)
			src := image.Rect(sx, sy, sx+sw, sy+sh).Intersect(bounds)
			if src.Empty() {
				continue
			}

			x := float64(offset.X) + lx
			y := float64(offset.Y) + ly
			particles = append(particles, Particle{
				SrcRect:    src,
				OriginX:    x,
				OriginY:    y,
				X:          x,
				Y:          y,
				Speed:      uniform(rng, cfg.SpeedMin, cfg.SpeedMax),
				AngleDeg:   uniform(rng, cfg.AngleStartDeg, cfg.AngleEndDeg),
				StartDelay: float64(col) / float64(cfg.Cols) * cfg.WaveWidth,
				Alpha:      restAlphaOpaque,
			})
		}
	}
	return particles
}

