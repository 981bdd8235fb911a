package effect

import (
	"math"
	"time"
)

// FrameClock turns fixed-rate update ticks into the elapsed fraction of a
// run, for hosts that count frames rather than wall time.
type FrameClock struct {
	frames int
	total  int
}

// NewFrameClock counts a run of d at tps updates per second. The run lasts
// at least one frame.
func NewFrameClock(d time.Duration, tps int) *FrameClock {
	total := int(math.Round(d.Seconds() * float64(tps)))
	return &FrameClock{total: max(total, 1)}
}

// Step advances one frame and returns the new fraction.
func (c *FrameClock) Step() float64 {
	if c.frames < c.total {
		c.frames++
	}
	return c.Fraction()
}

func (c *FrameClock) Fraction() float64 {
	return float64(c.frames) / float64(c.total)
}

func (c *FrameClock) Done() bool { return c.frames >= c.total }
func (c *FrameClock) Frames() int { return c.total }
func (c *FrameClock) Reset() { c.frames = 0 }
