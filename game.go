package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/disintegrate/curve"
	"github.com/milk9111/disintegrate/effect"
	"github.com/milk9111/disintegrate/obj"
	"github.com/milk9111/disintegrate/prefabs"
	"github.com/milk9111/disintegrate/stage"
)

const (
	baseWidth  = 960
	baseHeight = 540
	tps        = 60
)

var backdrop = color.NRGBA{R: 0x14, G: 0x16, B: 0x1f, A: 0xff}

type Game struct {
	frames int
	debug  bool

	effectName string
	seed       uint64
	override   image.Image
	layered    bool

	input   *obj.Input
	stage   *stage.Stage
	surface *obj.Surface
	ctrl    *effect.Controller
	clock   *effect.FrameClock
	watcher *prefabs.Watcher
	reload  bool

	ui     *ebitenui.UI
	status *widget.Text
}

// NewGame loads the named effect prefab. A non-nil content image replaces
// the prefab's card.
func NewGame(effectName string, content image.Image, seed uint64, debug bool) (*Game, error) {
	g := &Game{
		debug:      debug,
		effectName: effectName,
		seed:       seed,
		override:   content,
		input:      obj.NewInput(),
		stage:      stage.New(baseWidth, baseHeight, nil),
		surface:    obj.NewSurface(baseWidth, baseHeight),
	}
	g.stage.Background = backdrop

	if err := g.load(); err != nil {
		return nil, err
	}

	if w, err := prefabs.NewWatcher(); err != nil {
		log.Printf("prefab hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.ui = NewControlsUI(g)
	return g, nil
}

// load rebuilds the controller from the current prefab. The previous
// controller is kept when the prefab does not build.
func (g *Game) load() error {
	spec, err := prefabs.LoadEffectSpec(g.effectName)
	if err != nil {
		return err
	}
	cfg, err := spec.Build(curve.Builtins())
	if err != nil {
		return err
	}
	if g.seed != 0 {
		cfg.Seed = g.seed
	}
	if g.layered {
		cfg.Compositor = effect.NewLayeredCompositor(effect.DefaultTransitionWidth, nil)
	}

	if g.ctrl != nil {
		g.ctrl.Reset()
	}
	if g.override != nil {
		g.stage.SetContent(g.override)
	} else {
		g.stage.SetContent(spec.Card.Card().Render())
	}
	g.ctrl = effect.NewController(g.stage, cfg, effect.WithLogger(log.Default()))
	g.clock = effect.NewFrameClock(cfg.Duration, tps)
	log.Printf("loaded effect %q (%dx%d grid, %v)", spec.Name, cfg.Grid.Cols, cfg.Grid.Rows, cfg.Duration)
	return nil
}

func (g *Game) Start() {
	if g.ctrl.State() == effect.StateRunning {
		return
	}
	g.clock.Reset()
	g.ctrl.Start()
}

func (g *Game) Reset() {
	g.ctrl.Reset()
	g.clock.Reset()
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	g.ui.Update()
	g.pollWatcher()

	if g.input.DebugToggled {
		g.debug = !g.debug
	}
	if g.input.ToggleLayered {
		g.layered = !g.layered
		g.reload = true
	}
	if g.input.StartPressed {
		g.Start()
	}
	if g.input.ResetPressed {
		g.Reset()
	}

	if g.ctrl.State() == effect.StateRunning {
		g.ctrl.Advance(g.clock.Step())
	} else if g.reload {
		g.reload = false
		if err := g.load(); err != nil {
			log.Printf("reload %s: %v", g.effectName, err)
		}
	}

	g.status.Label = fmt.Sprintf("%s  %3.0f%%", g.ctrl.State(), g.ctrl.Progress()*100)
	return nil
}

// pollWatcher queues a reload for the next idle frame so a running effect is
// never swapped out mid-run.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Drain() {
		log.Printf("prefab changed: %s", c.Path)
		g.reload = true
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.stage.Dirty() {
		g.surface.Upload(g.stage.Compose(g.ctrl))
	}
	g.surface.Draw(screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Particles: %d    Split: %.2f",
			g.frames, ebiten.ActualFPS(), g.ctrl.ParticleCount(), g.ctrl.SplitProgress()))
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
