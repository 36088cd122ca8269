package core

import "time"

// MaxFrameDelta caps the per-frame delta so a suspended window does not
// produce a huge integration step when the loop resumes.
const MaxFrameDelta = 50 * time.Millisecond

// fpsSmoothing is the exponential-moving-average factor for the FPS readout.
const fpsSmoothing = 0.12

// FrameClock measures the wall-clock delta between consecutive frames,
// clamped to MaxFrameDelta.
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

// NewFrameClock constructs a FrameClock using the system clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Delta returns the seconds elapsed since the previous call, clamped to
// [0, MaxFrameDelta]. The first call returns zero.
func (c *FrameClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	if delta > MaxFrameDelta {
		delta = MaxFrameDelta
	}
	return delta.Seconds()
}

// FPSMeter keeps a smoothed frames-per-second estimate and the duration of
// the most recent render pass for the stats readout.
type FPSMeter struct {
	fps        float64
	lastRender time.Duration
}

// Tick folds one frame delta (in seconds) into the smoothed estimate.
func (m *FPSMeter) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	instant := 1 / dt
	if m.fps == 0 {
		m.fps = instant
		return
	}
	m.fps += fpsSmoothing * (instant - m.fps)
}

// FPS returns the smoothed frames-per-second estimate.
func (m *FPSMeter) FPS() float64 { return m.fps }

// ObserveRender records the duration of the latest render pass.
func (m *FPSMeter) ObserveRender(d time.Duration) { m.lastRender = d }

// LastRender returns the duration of the latest render pass.
func (m *FPSMeter) LastRender() time.Duration { return m.lastRender }
