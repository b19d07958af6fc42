package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownStartsRunning(t *testing.T) {
	c := New(10 * time.Second)
	assert.True(t, c.Running())
	assert.Equal(t, 10*time.Second, c.Remaining())
	assert.Equal(t, 10, c.DisplaySeconds())
}

func TestCountdownDisplayRoundsUp(t *testing.T) {
	c := New(10 * time.Second)

	c.Tick(100 * time.Millisecond)
	assert.Equal(t, 10, c.DisplaySeconds())

	c.Tick(900 * time.Millisecond)
	assert.Equal(t, 9, c.DisplaySeconds())

	c.Tick(8900 * time.Millisecond)
	assert.Equal(t, 1, c.DisplaySeconds())
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	c := New(300 * time.Millisecond)

	assert.False(t, c.Tick(100*time.Millisecond))
	assert.False(t, c.Tick(100*time.Millisecond))
	assert.True(t, c.Tick(100*time.Millisecond), "third tick reaches zero")

	// Expired countdowns ignore further ticks entirely.
	assert.False(t, c.Tick(100*time.Millisecond))
	assert.False(t, c.Running())
	assert.Equal(t, 0, c.DisplaySeconds())
}

func TestCountdownPauseResume(t *testing.T) {
	c := New(time.Second)
	c.Tick(400 * time.Millisecond)

	c.Pause()
	assert.False(t, c.Running())
	remaining := c.Remaining()

	// Ticks while paused change nothing, including sub-second progress.
	assert.False(t, c.Tick(500*time.Millisecond))
	assert.Equal(t, remaining, c.Remaining())

	c.Resume()
	assert.True(t, c.Running())
	assert.False(t, c.Tick(100*time.Millisecond))
	assert.Equal(t, remaining-100*time.Millisecond, c.Remaining())
}

func TestCountdownResumeAfterExpiryIsNoop(t *testing.T) {
	c := New(100 * time.Millisecond)
	assert.True(t, c.Tick(100*time.Millisecond))

	c.Resume()
	assert.False(t, c.Running())
	assert.False(t, c.Tick(time.Second))
}

func TestCountdownReset(t *testing.T) {
	c := New(500 * time.Millisecond)
	assert.True(t, c.Tick(500*time.Millisecond))

	c.Reset()
	assert.True(t, c.Running())
	assert.Equal(t, 500*time.Millisecond, c.Remaining())

	// A reset countdown can expire again.
	assert.True(t, c.Tick(500*time.Millisecond))
}
