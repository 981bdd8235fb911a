package effect

import (
	"image"
	"io"
	"log"
	"math"
	"slices"
	"time"

	"github.com/milk9111/disintegrate/common"
	"golang.org/x/image/draw"
)

// State is the controller's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Controller owns one effect run at a time: the snapshot, the particle set
// and the progress tracks. It is driven entirely by its host and is not safe
// for concurrent use.
type Controller struct {
	host       Host
	cfg        Config
	motion     MotionModel
	compositor Compositor
	rng        Rand
	logger     *log.Logger

	state     State
	snapshot  *Snapshot
	particles []Particle
	content   image.Rectangle
	progress  float64
	split     float64
}

type Option func(*Controller)

// WithRand replaces the seeded default random source.
func WithRand(r Rand) Option {
	return func(c *Controller) { c.rng = r }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewController(host Host, cfg Config, opts ...Option) *Controller {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	c := &Controller{
		host:       host,
		cfg:        cfg,
		motion:     cfg.Motion,
		compositor: cfg.Compositor,
		logger:     log.New(io.Discard, "", 0),
	}
	if c.motion == nil {
		c.motion = DefaultStaggeredMotion()
	}
	if c.compositor == nil {
		c.compositor = NewCutoverCompositor(DefaultTransitionWidth)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		c.rng = NewRand(seed)
	}
	return c
}

// Start captures the content and begins a run. It does nothing while a run
// is in progress or when the host has no content to capture.
func (c *Controller) Start() {
	if c.state == StateRunning || c.state == StateCapturing || c.host == nil {
		return
	}
	if w, h := c.host.ContentSize(); w <= 0 || h <= 0 {
		return
	}

	c.state = StateCapturing
	snap := NewSnapshot(c.host.RenderContentToSnapshot())
	if snap == nil {
		c.state = StateIdle
		return
	}

	x, y := c.host.ContentOffset()
	c.snapshot = snap
	c.content = image.Rect(x, y, x+snap.Width(), y+snap.Height())
	c.host.SetContentVisible(false)
	c.particles = Generate(snap, c.content.Min, c.cfg.Grid, c.rng)
	c.progress, c.split = 0, 0
	c.state = StateRunning

	c.logger.Printf("effect: start %dx%d at %v, %d particles", snap.Width(), snap.Height(), c.content.Min, len(c.particles))
	c.host.RequestRepaint()
}

// Advance moves the run to fraction of its duration. Fractions are clamped
// to [0,1] and never move backwards. Reaching 1 completes the run.
func (c *Controller) Advance(fraction float64) {
	if c.state != StateRunning || math.IsNaN(fraction) {
		return
	}
	fraction = max(common.Clamp01(fraction), c.progress)
	c.progress = fraction
	c.split = common.Clamp01(fraction * float64(c.cfg.Duration) / float64(c.cfg.splitDuration()))

	tick := Tick{Progress: c.progress, Split: c.split, Width: c.snapshot.Width()}
	for i := range c.particles {
		c.motion.Update(&c.particles[i], tick)
	}

	if c.progress >= 1 {
		c.release()
		c.state = StateCompleted
		c.host.SetContentVisible(true)
		c.logger.Printf("effect: completed")
	}
	c.host.RequestRepaint()
}

// Render composites the current frame onto dst. It reports false, drawing
// nothing, when no run is in progress; the host then shows its live content.
func (c *Controller) Render(dst draw.Image) bool {
	if c.state != StateRunning || dst == nil {
		return false
	}
	c.compositor.Render(dst, Frame{
		Snapshot:  c.snapshot,
		Particles: c.particles,
		Split:     c.split,
		Content:   c.content,
	})
	return true
}

// Reset abandons any run, releases the snapshot and particles, and shows the
// live content again. It is safe to call in any state.
func (c *Controller) Reset() {
	wasRunning := c.state == StateRunning
	c.release()
	c.progress, c.split = 0, 0
	c.state = StateIdle
	if c.host != nil {
		c.host.SetContentVisible(true)
		c.host.RequestRepaint()
	}
	if wasRunning {
		c.logger.Printf("effect: reset mid-run")
	}
}

func (c *Controller) release() {
	c.snapshot.Release()
	c.snapshot = nil
	c.particles = nil
	c.content = image.Rectangle{}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Progress() float64 { return c.progress }
func (c *Controller) SplitProgress() float64 { return c.split }
func (c *Controller) Snapshot() *Snapshot { return c.snapshot }
func (c *Controller) Content() image.Rectangle { return c.content }
func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) ParticleCount() int { return len(c.particles) }

// Particles returns a copy of the current particle set.
func (c *Controller) Particles() []Particle {
	return slices.Clone(c.particles)
}
