package effect

import (
	"image"
	"math"
	"slices"
	"testing"
)

func testGrid(rows, cols, gap int) GridConfig {
	g := DefaultGridConfig()
	g.Rows, g.Cols, g.GapPx = rows, cols, gap
	return g
}

func TestGenerateTwoByTwo(t *testing.T) {
	snap := NewSnapshot(solid(100, 100, red))
	particles := Generate(snap, image.Point{}, testGrid(2, 2, 0), constRand(0))

	if len(particles) != 4 {
		t.Fatalf("expected 4 particles, got %d", len(particles))
	}
	want := []image.Rectangle{
		image.Rect(0, 0, 35, 35),
		image.Rect(50, 0, 85, 35),
		image.Rect(0, 50, 35, 85),
		image.Rect(50, 50, 85, 85),
	}
	for i, p := range particles {
		if p.SrcRect != want[i] {
			t.Fatalf("particle %d: src %v, want %v", i, p.SrcRect, want[i])
		}
		if p.Width() < 35 || p.Width() > 65 || p.Height() < 35 || p.Height() > 65 {
			t.Fatalf("particle %d size %dx%d outside jitter bounds", i, p.Width(), p.Height())
		}
		if p.X != float64(p.SrcRect.Min.X) || p.Y != float64(p.SrcRect.Min.Y) {
			t.Fatalf("particle %d placed at (%v,%v), want %v", i, p.X, p.Y, p.SrcRect.Min)
		}
		if p.Speed != DefaultSpeedMin || p.AngleDeg != DefaultAngleStartDeg {
			t.Fatalf("particle %d: speed/angle %v/%v, want range minimums", i, p.Speed, p.AngleDeg)
		}
	}
	if particles[1].StartDelay != 0.5*DefaultWaveWidth {
		t.Fatalf("expected start delay %v for col 1, got %v", 0.5*DefaultWaveWidth, particles[1].StartDelay)
	}
}

func TestGenerateDropsCellsPastFarEdge(t *testing.T) {
	snap := NewSnapshot(solid(100, 100, red))
	particles := Generate(snap, image.Point{}, testGrid(2, 2, 0), constRand(0.999))
	if len(particles) != 1 {
		t.Fatalf("expected only the top-left cell to fit, got %d particles", len(particles))
	}
	if particles[0].SrcRect.Min != (image.Point{X: 20, Y: 10}) {
		t.Fatalf("unexpected source origin %v", particles[0].SrcRect.Min)
	}
}

func TestGenerateInvariants(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		offset image.Point
		grid   GridConfig
	}{
		{"defaults", 400, 300, image.Pt(40, 25), DefaultGridConfig()},
		{"small_shrinks", 73, 41, image.Pt(3, 7), DefaultGridConfig()},
		{"odd_sizes_gap", 333, 127, image.Point{}, testGrid(7, 13, 2)},
		{"single_cell", 50, 50, image.Pt(10, 10), testGrid(1, 1, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snap := NewSnapshot(solid(c.w, c.h, red))
			adj := c.grid.Adjusted(c.w, c.h)
			for seed := uint64(1); seed <= 25; seed++ {
				particles := Generate(snap, c.offset, c.grid, NewRand(seed))
				if len(particles) > adj.Rows*adj.Cols {
					t.Fatalf("seed %d: %d particles exceed %dx%d grid", seed, len(particles), adj.Rows, adj.Cols)
				}
				for i, p := range particles {
					if !p.SrcRect.In(snap.Bounds()) {
						t.Fatalf("seed %d particle %d: src %v outside %v", seed, i, p.SrcRect, snap.Bounds())
					}
					if p.Width() < 1 || p.Height() < 1 {
						t.Fatalf("seed %d particle %d: degenerate %v", seed, i, p.SrcRect)
					}
					if math.Abs(p.X-float64(c.offset.X+p.SrcRect.Min.X)) > 0.5 ||
						math.Abs(p.Y-float64(c.offset.Y+p.SrcRect.Min.Y)) > 0.5 {
						t.Fatalf("seed %d particle %d: placement (%v,%v) does not match src %v", seed, i, p.X, p.Y, p.SrcRect)
					}
					if p.Speed < c.grid.SpeedMin || p.Speed > c.grid.SpeedMax {
						t.Fatalf("seed %d particle %d: speed %v out of range", seed, i, p.Speed)
					}
					if p.AngleDeg < c.grid.AngleStartDeg || p.AngleDeg > c.grid.AngleEndDeg {
						t.Fatalf("seed %d particle %d: angle %v out of range", seed, i, p.AngleDeg)
					}
					if p.Alpha != 255 || p.Activated {
						t.Fatalf("seed %d particle %d: expected fresh opaque dormant particle", seed, i)
					}
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	snap := NewSnapshot(solid(320, 200, red))
	a := Generate(snap, image.Pt(5, 5), DefaultGridConfig(), NewRand(42))
	b := Generate(snap, image.Pt(5, 5), DefaultGridConfig(), NewRand(42))
	if len(a) == 0 {
		t.Fatalf("expected particles")
	}
	if !slices.Equal(a, b) {
		t.Fatalf("identical seeds produced different particle sets")
	}
	c := Generate(snap, image.Pt(5, 5), DefaultGridConfig(), NewRand(43))
	if slices.Equal(a, c) {
		t.Fatalf("different seeds produced identical particle sets")
	}
}

func TestGenerateDegenerateInputs(t *testing.T) {
	snap := NewSnapshot(solid(100, 100, red))
	if got := Generate(nil, image.Point{}, DefaultGridConfig(), NewRand(1)); got != nil {
		t.Fatalf("expected nil for nil snapshot, got %d particles", len(got))
	}
	if got := Generate(snap, image.Point{}, DefaultGridConfig(), nil); got != nil {
		t.Fatalf("expected nil without a random source")
	}
	if got := Generate(snap, image.Point{}, testGrid(2, 2, 100), constRand(0)); len(got) != 0 {
		t.Fatalf("expected a gap wider than every cell to drop all particles, got %d", len(got))
	}
}

func TestGridAdjusted(t *testing.T) {
	cases := []struct {
		name             string
		w, h             int
		wantRows, wantCs int
	}{
		{"fits", 400, 300, 10, 20},
		{"narrow", 60, 400, 10, 6},
		{"small", 60, 40, 4, 6},
		{"tiny", 5, 5, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := DefaultGridConfig().Adjusted(c.w, c.h)
			if g.Rows != c.wantRows || g.Cols != c.wantCs {
				t.Fatalf("got %dx%d, want %dx%d", g.Rows, g.Cols, c.wantRows, c.wantCs)
			}
		})
	}
}

func TestGridAdjustedWithoutMinimumSize(t *testing.T) {
	cases := []struct {
		name             string
		rows, cols       int
		wantRows, wantCs int
	}{
		{"within", 4, 8, 4, 8},
		{"dense", 5000, 5000, 40, 100},
		{"overflowing", math.MaxInt, math.MaxInt, 40, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultGridConfig()
			cfg.MinParticleSizePx = 0
			cfg.GapPx = 0
			cfg.Rows, cfg.Cols = c.rows, c.cols

			g := cfg.Adjusted(100, 40)
			if g.Rows != c.wantRows || g.Cols != c.wantCs {
				t.Fatalf("got %dx%d, want %dx%d", g.Rows, g.Cols, c.wantRows, c.wantCs)
			}

			particles := Generate(NewSnapshot(solid(100, 40, red)), image.Point{}, cfg, constRand(0))
			if len(particles) > g.Rows*g.Cols {
				t.Fatalf("got %d particles for a %dx%d grid", len(particles), g.Rows, g.Cols)
			}
			for _, p := range particles {
				if !p.SrcRect.In(image.Rect(0, 0, 100, 40)) {
					t.Fatalf("source %v outside the snapshot", p.SrcRect)
				}
			}
		})
	}
}
