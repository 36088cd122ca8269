package kaleido

import "math"

// Radial curve weights and clamp bounds, as fractions of the wedge radius.
const (
	radialBase = 0.55
	radialW1   = 0.30
	radialW2   = 0.15
	radialW3   = 0.10
	radialMin  = 0.05
	radialMax  = 0.98
)

// Frame-phase mixing coefficients: how pattern time and swirl phase combine
// into the per-frame rotation of each harmonic layer.
const (
	phase1Time  = 1.3
	phase1Swirl = 0.7
	phase2Time  = -0.9
	phase2Swirl = 1.4
	phase3Time  = 0.6
	phase3Swirl = -1.1
)

// FramePhases carries the sine/cosine of the three frame-global harmonic
// phases. Computing them once per frame lets the per-sample loop rotate the
// cached base phases with the angle-addition identity instead of calling
// math.Sin per sample.
type FramePhases struct {
	Sin1, Cos1 float64
	Sin2, Cos2 float64
	Sin3, Cos3 float64
}

// PhasesAt evaluates the frame phases for the given pattern time and swirl
// phase.
func PhasesAt(patternTime, swirlPhase float64) FramePhases {
	var ph FramePhases
	ph.Sin1, ph.Cos1 = math.Sincos(phase1Time*patternTime + phase1Swirl*swirlPhase)
	ph.Sin2, ph.Cos2 = math.Sincos(phase2Time*patternTime + phase2Swirl*swirlPhase)
	ph.Sin3, ph.Cos3 = math.Sincos(phase3Time*patternTime + phase3Swirl*swirlPhase)
	return ph
}

// Radial returns the radial fraction of sample j under the given frame
// phases: clamp(0.55 + 0.30*h1 + 0.15*h2 + 0.10*h3, 0.05, 0.98), where
// h_i = sin(base_i + phase_i) expanded via sin(b+p) = sin b cos p + cos b sin p.
func (c *Cache) Radial(j int, ph FramePhases) float64 {
	h1 := c.SinBase1[j]*ph.Cos1 + c.CosBase1[j]*ph.Sin1
	h2 := c.SinBase2[j]*ph.Cos2 + c.CosBase2[j]*ph.Sin2
	h3 := c.SinBase3[j]*ph.Cos3 + c.CosBase3[j]*ph.Sin3
	return clamp(radialBase+radialW1*h1+radialW2*h2+radialW3*h3, radialMin, radialMax)
}

// ColorBucket assigns a sample parameter to a palette index:
// floor(t * colorCount) mod colorCount.
func ColorBucket(t float64, colorCount int) int {
	if colorCount <= 0 {
		return 0
	}
	return int(math.Floor(t*float64(colorCount))) % colorCount
}
