package kaleido

import (
	"math"
	"testing"
)

// The deterministic scenario: complexity=6, segments=12, phases at zero.
// The radial value at sample t=0.5 must equal the closed-form harmonic sum.
func TestRadialClosedFormScenario(t *testing.T) {
	var c Cache
	c.Ensure(12, 6)

	l := c.Len() - 1
	j := l / 2
	if c.T[j] != 0.5 {
		t.Fatalf("midpoint sample parameter = %v, want 0.5", c.T[j])
	}

	k1, k2, k3 := HarmonicFrequencies(6)
	want := 0.55 +
		0.30*math.Sin(k1*0.5) +
		0.15*math.Sin(k2*0.5) +
		0.10*math.Sin(k3*1.2*0.5)

	got := c.Radial(j, PhasesAt(0, 0))
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("radial at t=0.5 = %v, want %v", got, want)
	}
}

// Angle addition over cached tables must agree with evaluating the
// sinusoids directly at arbitrary phases.
func TestRadialMatchesDirectEvaluation(t *testing.T) {
	var c Cache
	c.Ensure(9, 11)
	k1, k2, k3 := HarmonicFrequencies(11)

	cases := []struct{ time, swirl float64 }{
		{0, 0},
		{1.7, 0},
		{0, -2.3},
		{12.25, 7.5},
		{-3.1, 0.4},
	}
	for _, tc := range cases {
		ph := PhasesAt(tc.time, tc.swirl)
		p1 := 1.3*tc.time + 0.7*tc.swirl
		p2 := -0.9*tc.time + 1.4*tc.swirl
		p3 := 0.6*tc.time - 1.1*tc.swirl
		for _, j := range []int{0, 17, c.Len() / 2, c.Len() - 1} {
			tp := c.T[j]
			direct := 0.55 +
				0.30*math.Sin(k1*tp+p1) +
				0.15*math.Sin(k2*tp+p2) +
				0.10*math.Sin(k3*1.2*tp+p3)
			direct = clamp(direct, 0.05, 0.98)
			if got := c.Radial(j, ph); math.Abs(got-direct) > 1e-9 {
				t.Fatalf("radial mismatch at j=%d time=%v swirl=%v: %v vs %v", j, tc.time, tc.swirl, got, direct)
			}
		}
	}
}

func TestRadialStaysClamped(t *testing.T) {
	var c Cache
	c.Ensure(3, 16)
	for _, phase := range []float64{0, 0.37, 1.9, 55.5} {
		ph := PhasesAt(phase, phase*0.61)
		for j := 0; j < c.Len(); j++ {
			r := c.Radial(j, ph)
			if r < 0.05 || r > 0.98 {
				t.Fatalf("radial %v out of [0.05, 0.98] at j=%d phase=%v", r, j, phase)
			}
		}
	}
}

func TestColorBucket(t *testing.T) {
	cases := []struct {
		t     float64
		count int
		want  int
	}{
		{0, 5, 0},
		{0.19, 5, 0},
		{0.2, 5, 1},
		{0.99, 5, 4},
		{1, 5, 0}, // wraps back to the first color
		{0.5, 1, 0},
		{0.5, 0, 0},
	}
	for _, tc := range cases {
		if got := ColorBucket(tc.t, tc.count); got != tc.want {
			t.Errorf("ColorBucket(%v, %d) = %d, want %d", tc.t, tc.count, got, tc.want)
		}
	}
}
