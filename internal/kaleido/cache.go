package kaleido

import "math"

// Sample-count sizing. The taper lowers the sample budget as the wedge
// narrows, so high segment counts do not multiply per-frame cost.
const (
	minSampleCount       = 260
	baseSampleCount      = 320
	samplesPerComplexity = 180

	referenceSegments = 12
	minTaper          = 0.25
	taperExponent     = 0.75
)

// Curve shaping constants.
const (
	spreadBase          = 2.0
	spreadPerComplexity = 0.15
	k3ParamScale        = 1.2
)

// WedgeSpan returns the angular span of one wedge in radians.
func WedgeSpan(segments int) float64 {
	if segments < 1 {
		segments = 1
	}
	return twoPi / float64(segments)
}

// Spread widens the sampled arc beyond the wedge span so the clipped curve
// fills the wedge corners: 2 + 0.15*complexity.
func Spread(complexity int) float64 {
	return spreadBase + spreadPerComplexity*float64(complexity)
}

// HarmonicFrequencies returns the three base frequencies of the radial curve
// for the given complexity.
func HarmonicFrequencies(complexity int) (k1, k2, k3 float64) {
	c := float64(complexity)
	return 6 + 0.9*c, 10 + 1.2*c, 14 + 0.6*c
}

// SampleCount returns L, the number of curve intervals for one wedge.
// L = max(260, floor((320 + 180*complexity) * taper)) with
// taper = clamp(span / (2π/12), 0.25, 1)^0.75.
//
// The reference span is computed through WedgeSpan so that a 12-segment
// wedge yields a ratio of exactly 1; a separately rounded constant lands
// one ulp off and drops L below the un-tapered budget.
func SampleCount(span float64, complexity int) int {
	taper := span / WedgeSpan(referenceSegments)
	if taper > 1 {
		taper = 1
	}
	if taper < minTaper {
		taper = minTaper
	}
	taper = math.Pow(taper, taperExponent)

	l := int(math.Floor((baseSampleCount + samplesPerComplexity*float64(complexity)) * taper))
	if l < minSampleCount {
		l = minSampleCount
	}
	return l
}

type cacheKey struct {
	segments   int
	complexity int
}

// Cache holds the per-sample tables the wedge renderer reads every frame:
// the sample parameter, sine/cosine of the in-wedge angle, and sine/cosine
// of the three harmonic base phases. Tables are parallel slices indexed
// 0..L and are rebuilt only when segments or complexity change.
type Cache struct {
	key   cacheKey
	valid bool

	T        []float64
	SinAngle []float64
	CosAngle []float64

	SinBase1 []float64
	CosBase1 []float64
	SinBase2 []float64
	CosBase2 []float64
	SinBase3 []float64
	CosBase3 []float64
}

// Len returns the number of table entries (L+1).
func (c *Cache) Len() int { return len(c.T) }

// Ensure rebuilds the tables when the (segments, complexity) key changed.
// It reports whether a rebuild happened.
func (c *Cache) Ensure(segments, complexity int) bool {
	segments = clampInt(segments, MinSegments, MaxSegments)
	complexity = clampInt(complexity, MinComplexity, MaxComplexity)

	key := cacheKey{segments: segments, complexity: complexity}
	if c.valid && key == c.key {
		return false
	}

	span := WedgeSpan(segments)
	l := SampleCount(span, complexity)
	c.resize(l + 1)

	spread := Spread(complexity)
	k1, k2, k3 := HarmonicFrequencies(complexity)
	for j := 0; j <= l; j++ {
		t := float64(j) / float64(l)
		c.T[j] = t
		c.SinAngle[j], c.CosAngle[j] = math.Sincos((t - 0.5) * span * spread)
		c.SinBase1[j], c.CosBase1[j] = math.Sincos(k1 * t)
		c.SinBase2[j], c.CosBase2[j] = math.Sincos(k2 * t)
		c.SinBase3[j], c.CosBase3[j] = math.Sincos(k3 * k3ParamScale * t)
	}

	c.key = key
	c.valid = true
	return true
}

func (c *Cache) resize(n int) {
	if len(c.T) == n {
		return
	}
	c.T = make([]float64, n)
	c.SinAngle = make([]float64, n)
	c.CosAngle = make([]float64, n)
	c.SinBase1 = make([]float64, n)
	c.CosBase1 = make([]float64, n)
	c.SinBase2 = make([]float64, n)
	c.CosBase2 = make([]float64, n)
	c.SinBase3 = make([]float64, n)
	c.CosBase3 = make([]float64, n)
}
