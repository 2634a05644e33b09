package world

import "time"

// FrameClock measures the time between frames, capped at MaxFrameDelta.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the time since the previous call. The first call returns 0.
func (c *FrameClock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta > MaxFrameDelta {
		delta = MaxFrameDelta
	}
	return delta
}

// Stepper turns frame time into a number of Step calls.
//
// With a zero rate every frame runs exactly one step and the frame time is ignored,
// so motion speed follows the frame rate. With a positive rate it keeps a fixed
// timestep and carries the remainder over to the next frame.
type Stepper struct {
	period  time.Duration
	pending time.Duration
}

func NewStepper(stepsPerSecond int) *Stepper {
	s := &Stepper{}
	if stepsPerSecond > 0 {
		s.period = time.Second / time.Duration(stepsPerSecond)
	}
	return s
}

func (s *Stepper) Steps(delta time.Duration) int {
	if s.period <= 0 {
		return 1
	}
	s.pending += delta
	n := int(s.pending / s.period)
	s.pending -= time.Duration(n) * s.period
	return n
}
