// Package timer implements the per-item countdown as an explicit state
// machine. The TUI feeds it elapsed-time deltas; it never owns a goroutine
// or a ticker, so there is nothing to leak or double-fire.
package timer

import (
	"math"
	"time"
)

// Countdown holds remaining time at sub-second precision and runs
// Running → (expired) or Running ⇄ Paused. A new countdown starts running.
type Countdown struct {
	duration  time.Duration
	remaining time.Duration
	running   bool
	expired   bool
}

// New creates a countdown for the given duration, already running.
func New(d time.Duration) *Countdown {
	return &Countdown{
		duration:  d,
		remaining: d,
		running:   true,
	}
}

// Tick advances the countdown by delta. It returns true exactly once, on the
// tick that reaches zero; the countdown then stops and stays expired until
// Reset re-arms it, so a single expiry can only trigger a single advance.
func (c *Countdown) Tick(delta time.Duration) bool {
	if !c.running || c.expired {
		return false
	}

	c.remaining -= delta
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		c.expired = true
		return true
	}
	return false
}

// Pause suspends the countdown without losing elapsed precision.
func (c *Countdown) Pause() { c.running = false }

// Resume continues a paused countdown. No-op once expired.
func (c *Countdown) Resume() {
	if !c.expired {
		c.running = true
	}
}

// Reset re-arms to the full duration and re-enters Running. Called on manual
// advance, which is what cancels a pending expiry.
func (c *Countdown) Reset() {
	c.remaining = c.duration
	c.running = true
	c.expired = false
}

// Running reports whether the countdown is actively ticking.
func (c *Countdown) Running() bool { return c.running }

// Remaining returns the precise remaining time.
func (c *Countdown) Remaining() time.Duration { return c.remaining }

// DisplaySeconds returns remaining time rounded up to whole seconds, the
// only form the UI shows. A countdown at 9.1s displays 10.
func (c *Countdown) DisplaySeconds() int {
	return int(math.Ceil(c.remaining.Seconds()))
}
