package racer

import "time"

// Clock turns wall-clock frame times into bounded simulation steps.
// A long frame (a hitch, a suspended terminal) becomes a single step of at
// most maxStep seconds so obstacles can never tunnel through the car.
type Clock struct {
	maxStep float64
	last    time.Time
	started bool
}

// NewClock creates a clock that never yields more than maxStep seconds.
func NewClock(maxStep float64) *Clock {
	return &Clock{maxStep: maxStep}
}

// Advance records a new frame time and returns the clamped step since the
// previous frame. The first call only establishes the reference and yields 0.
func (c *Clock) Advance(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return c.Clamp(dt)
}

// Clamp bounds a step to [0, maxStep].
func (c *Clock) Clamp(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > c.maxStep {
		return c.maxStep
	}
	return dt
}

// Reset forgets the previous frame time.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
