package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockClampsLargeGaps(t *testing.T) {
	current := time.Unix(0, 0)
	clock := &FrameClock{now: func() time.Time { return current }}

	if dt := clock.Delta(); dt != 0 {
		t.Fatalf("first delta = %v, want 0", dt)
	}

	current = current.Add(16 * time.Millisecond)
	if dt := clock.Delta(); math.Abs(dt-0.016) > 1e-9 {
		t.Fatalf("delta = %v, want 0.016", dt)
	}

	// Simulate a suspended window: a multi-second gap must clamp to the cap.
	current = current.Add(3 * time.Second)
	if dt := clock.Delta(); math.Abs(dt-MaxFrameDelta.Seconds()) > 1e-9 {
		t.Fatalf("delta after gap = %v, want %v", dt, MaxFrameDelta.Seconds())
	}
}

func TestFrameClockIgnoresBackwardSteps(t *testing.T) {
	current := time.Unix(10, 0)
	clock := &FrameClock{now: func() time.Time { return current }}
	clock.Delta()

	current = current.Add(-time.Second)
	if dt := clock.Delta(); dt != 0 {
		t.Fatalf("delta for backward clock = %v, want 0", dt)
	}
}

func TestFPSMeterSmoothing(t *testing.T) {
	var m FPSMeter

	m.Tick(1.0 / 60)
	if math.Abs(m.FPS()-60) > 1e-9 {
		t.Fatalf("first tick FPS = %v, want 60", m.FPS())
	}

	// A single slow frame should nudge the estimate, not collapse it.
	m.Tick(1.0 / 30)
	want := 60 + fpsSmoothing*(30-60)
	if math.Abs(m.FPS()-want) > 1e-9 {
		t.Fatalf("smoothed FPS = %v, want %v", m.FPS(), want)
	}

	m.Tick(0)
	if math.Abs(m.FPS()-want) > 1e-9 {
		t.Fatalf("zero delta changed FPS to %v", m.FPS())
	}
}

func TestFPSMeterRenderDuration(t *testing.T) {
	var m FPSMeter
	m.ObserveRender(3 * time.Millisecond)
	if m.LastRender() != 3*time.Millisecond {
		t.Fatalf("LastRender = %v, want 3ms", m.LastRender())
	}
}
