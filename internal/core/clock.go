package core

import "time"

// FrameClock turns frame timestamps into elapsed seconds.
// The first call after construction or Reset yields 0.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick records now as the current frame time and returns the seconds
// elapsed since the previous frame. A timestamp earlier than the previous
// one yields 0, so dt is never negative.
func (c *FrameClock) Tick(now time.Time) float32 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	elapsed := now.Sub(c.last)
	if elapsed < 0 {
		return 0
	}
	c.last = now
	return float32(elapsed.Seconds())
}

// Reset forgets the previous frame.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
