package main

import (
	"errors"
	"fmt"
	"image"
	imgcolor "image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/milk9111/disintegrate/content"
	"github.com/milk9111/disintegrate/curve"
	"github.com/milk9111/disintegrate/effect"
	"github.com/milk9111/disintegrate/prefabs"
	"github.com/milk9111/disintegrate/stage"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
)

const margin = 40

var background = imgcolor.RGBA{R: 0x14, G: 0x16, B: 0x1f, A: 0xff}

type renderOptions struct {
	Effect     string
	Image      string
	Out        string
	FPS        int
	DurationMs int
	Seed       uint64
	Layered    bool
}

func addRender(topLevel *cobra.Command) {
	o := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one effect run to a GIF or a PNG sequence.",
		Example: `
disintegrate render --out card.gif
disintegrate render --effect layered.yaml --image logo.png --out frames/
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			res, err := render(o)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), o.Out, res, time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&o.Effect, "effect", prefabs.DefaultEffect, "effect prefab name")
	cmd.Flags().StringVar(&o.Image, "image", "", "PNG/JPEG/GIF to disintegrate instead of the prefab card")
	cmd.Flags().StringVarP(&o.Out, "out", "o", "disintegrate.gif", "output .gif file, or a directory for PNG frames")
	cmd.Flags().IntVar(&o.FPS, "fps", 30, "frames per second of the output")
	cmd.Flags().IntVar(&o.DurationMs, "duration", 0, "override the prefab duration in milliseconds")
	cmd.Flags().Uint64Var(&o.Seed, "seed", 1, "particle seed (0 seeds from the clock)")
	cmd.Flags().BoolVar(&o.Layered, "layered", false, "use the layered compositor regardless of the prefab")

	topLevel.AddCommand(cmd)
}

func addPrefabs(topLevel *cobra.Command) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "prefabs",
		Short: "List the embedded effect prefabs and curves.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			bold.Fprintln(w, "effects:")
			for _, name := range prefabs.Names() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			bold.Fprintln(w, "curves:")
			fmt.Fprintf(w, "  %s, script:<name>\n", strings.Join(curve.Builtins().Names(), ", "))
			return nil
		},
	})
}

type renderResult struct {
	Frames    int
	Particles int
	Size      image.Point
}

func render(o *renderOptions) (renderResult, error) {
	if o.FPS <= 0 {
		return renderResult{}, fmt.Errorf("fps must be positive, got %d", o.FPS)
	}

	spec, err := prefabs.LoadEffectSpec(o.Effect)
	if err != nil {
		return renderResult{}, err
	}
	if o.DurationMs > 0 {
		spec.DurationMs = o.DurationMs
	}
	cfg, err := spec.Build(curve.Builtins())
	if err != nil {
		return renderResult{}, err
	}
	cfg.Seed = o.Seed
	if o.Layered {
		cfg.Compositor = effect.NewLayeredCompositor(effect.DefaultTransitionWidth, nil)
	}

	var src image.Image = spec.Card.Card().Render()
	if o.Image != "" {
		if src, err = content.LoadImage(o.Image); err != nil {
			return renderResult{}, err
		}
	}

	b := src.Bounds()
	st := stage.New(b.Dx()+2*margin, b.Dy()+2*margin, src)
	st.Background = background
	ctrl := effect.NewController(st, cfg)
	clock := effect.NewFrameClock(cfg.Duration, o.FPS)

	ctrl.Start()
	if ctrl.State() != effect.StateRunning {
		return renderResult{}, errors.New("content could not be captured")
	}
	res := renderResult{Particles: len(ctrl.Particles()), Size: st.Bounds().Size()}

	enc, err := newEncoder(o.Out, o.FPS)
	if err != nil {
		return renderResult{}, err
	}
	for {
		if err := enc.Add(st.Compose(ctrl)); err != nil {
			return renderResult{}, err
		}
		res.Frames++
		if clock.Done() {
			break
		}
		ctrl.Advance(clock.Step())
	}
	return res, enc.Close()
}

type frameEncoder interface {
	Add(frame *image.RGBA) error
	Close() error
}

func newEncoder(out string, fps int) (frameEncoder, error) {
	if strings.EqualFold(filepath.Ext(out), ".gif") {
		return &gifEncoder{path: out, delay: max(1, int(math.Round(100/float64(fps))))}, nil
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", out, err)
	}
	return &pngEncoder{dir: out}, nil
}

type gifEncoder struct {
	path  string
	delay int
	anim  gif.GIF
}

func (e *gifEncoder) Add(frame *image.RGBA) error {
	p := image.NewPaletted(frame.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), frame, frame.Bounds().Min)
	e.anim.Image = append(e.anim.Image, p)
	e.anim.Delay = append(e.anim.Delay, e.delay)
	return nil
}

func (e *gifEncoder) Close() error {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", e.path, err)
	}
	if err := gif.EncodeAll(f, &e.anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", e.path, err)
	}
	return f.Close()
}

type pngEncoder struct {
	dir string
	n   int
}

func (e *pngEncoder) Add(frame *image.RGBA) error {
	path := filepath.Join(e.dir, fmt.Sprintf("frame_%04d.png", e.n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	e.n++
	return f.Close()
}

func (e *pngEncoder) Close() error { return nil }

func printResult(w io.Writer, out string, res renderResult, took time.Duration) {
	ok := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)
	ok.Fprint(w, "rendered ")
	fmt.Fprintf(w, "%s ", out)
	faint.Fprintf(w, "(%d frames, %d particles, %dx%d, %v)\n",
		res.Frames, res.Particles, res.Size.X, res.Size.Y, took.Round(time.Millisecond))
}
