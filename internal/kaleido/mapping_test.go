package kaleido

import (
	"math"
	"testing"
)

func TestSliderGainEndpoints(t *testing.T) {
	for _, k := range []float64{0.1, 1, DefaultGainSteepness, 5, 20} {
		if got := SliderGain(0, k); got != 0 {
			t.Errorf("SliderGain(0, %v) = %v, want 0", k, got)
		}
		if got := SliderGain(1, k); math.Abs(got-1) > 1e-12 {
			t.Errorf("SliderGain(1, %v) = %v, want 1", k, got)
		}
	}
}

func TestSliderGainMonotonicAndBounded(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		g := SliderGain(x, DefaultGainSteepness)
		if g < 0 || g > 1 {
			t.Fatalf("SliderGain(%v) = %v out of [0, 1]", x, g)
		}
		if g <= prev && i > 0 {
			t.Fatalf("SliderGain not strictly increasing at x=%v", x)
		}
		prev = g
	}
}

func TestSliderGainClampsInput(t *testing.T) {
	if got := SliderGain(-2, DefaultGainSteepness); got != 0 {
		t.Fatalf("SliderGain(-2) = %v, want 0", got)
	}
	if got := SliderGain(3, DefaultGainSteepness); math.Abs(got-1) > 1e-12 {
		t.Fatalf("SliderGain(3) = %v, want 1", got)
	}
}

func TestSensitivityShapeRange(t *testing.T) {
	if got := SensitivityShape(0); math.Abs(got-0.22) > 1e-12 {
		t.Fatalf("SensitivityShape(0) = %v, want 0.22", got)
	}
	if got := SensitivityShape(1); math.Abs(got-0.72) > 1e-12 {
		t.Fatalf("SensitivityShape(1) = %v, want 0.72", got)
	}
	for i := 0; i <= 20; i++ {
		s := float64(i) / 20
		got := SensitivityShape(s)
		if got < 0.22 || got > 0.72 {
			t.Fatalf("SensitivityShape(%v) = %v out of [0.22, 0.72]", s, got)
		}
	}
}

func TestTargetRatesRotationCarriesSign(t *testing.T) {
	p := DefaultConfig().Params
	p.RotationRate = 0.6
	pos := TargetRates(p)
	p.RotationRate = -0.6
	neg := TargetRates(p)

	if pos.Rotation <= 0 {
		t.Fatalf("positive raw input produced rotation %v", pos.Rotation)
	}
	if math.Abs(pos.Rotation+neg.Rotation) > 1e-12 {
		t.Fatalf("rotation not symmetric: %v vs %v", pos.Rotation, neg.Rotation)
	}
	if pos.Pattern != neg.Pattern || pos.Swirl != neg.Swirl {
		t.Fatal("rotation sign leaked into other rates")
	}
}

func TestTargetRatesZeroSlidersGiveZeroRates(t *testing.T) {
	p := DefaultConfig().Params
	p.PatternSpeed = 0
	p.RotationRate = 0
	p.SwirlRate = 0
	got := TargetRates(p)
	if got.Pattern != 0 || got.Rotation != 0 || got.Swirl != 0 {
		t.Fatalf("zero sliders produced rates %+v", got)
	}
}
