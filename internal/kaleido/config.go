package kaleido

// Knob bounds. All setters clamp into these ranges before use.
const (
	MinSegments   = 3
	MaxSegments   = 64
	MinComplexity = 1
	MaxComplexity = 16

	MinSaturationBoost = 1.0
	MaxSaturationBoost = 2.2

	MinPixelRatioCap = 1.0
	MaxPixelRatioCap = 2.5
)

// Params holds the user-facing tunables read by the render loop each frame.
type Params struct {
	Segments   int
	Complexity int
	Running    bool

	PatternSpeed float64 // 0..1
	RotationRate float64 // -1..1, sign sets spin direction
	SwirlRate    float64 // 0..1
	Sensitivity  float64 // 0..1

	SaturationBoost float64
	PixelRatioCap   float64
}

// Config describes the initial scene setup.
type Config struct {
	Width  int
	Height int

	Colors []string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  900,
		Height: 900,
		Colors: []string{"#1b2340", "#ff5a5f", "#ffd166", "#06d6a0", "#118ab2"},
		Params: Params{
			Segments:        12,
			Complexity:      6,
			Running:         true,
			PatternSpeed:    0.55,
			RotationRate:    0.35,
			SwirlRate:       0.45,
			Sensitivity:     0.5,
			SaturationBoost: 1.4,
			PixelRatioCap:   2.0,
		},
	}
}

// Clamp folds every knob into its documented range.
func (p *Params) Clamp() {
	p.Segments = clampInt(p.Segments, MinSegments, MaxSegments)
	p.Complexity = clampInt(p.Complexity, MinComplexity, MaxComplexity)
	p.PatternSpeed = clamp(p.PatternSpeed, 0, 1)
	p.RotationRate = clamp(p.RotationRate, -1, 1)
	p.SwirlRate = clamp(p.SwirlRate, 0, 1)
	p.Sensitivity = clamp(p.Sensitivity, 0, 1)
	p.SaturationBoost = clamp(p.SaturationBoost, MinSaturationBoost, MaxSaturationBoost)
	p.PixelRatioCap = clamp(p.PixelRatioCap, MinPixelRatioCap, MaxPixelRatioCap)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
