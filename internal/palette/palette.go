// Package palette resolves user-supplied hex colors into the stroke colors
// used by the renderer. The first entry is used verbatim; the rest get a
// saturation boost so thin strokes stay readable against the background.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MinColors is the smallest palette the renderer accepts.
	MinColors = 3
	// MaxColors is the largest palette the renderer accepts.
	MaxColors = 12

	// addHueStep rotates the hue of the previous last entry when a color is
	// appended, so grown palettes do not repeat verbatim.
	addHueStep = 47.0
)

// Parse converts a hex string like "#1fa2ff" into a color. Invalid input
// falls back to white rather than erroring inside the frame.
func Parse(hex string) colorful.Color {
	c, err := colorful.Hex(strings.TrimSpace(strings.ToLower(hex)))
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Boost multiplies the HSL saturation of c by factor, clamped to [0, 1].
// Fully saturated colors pass through unchanged.
func Boost(c colorful.Color, factor float64) colorful.Color {
	h, s, l := c.Hsl()
	s *= factor
	if s > 1 {
		s = 1
	}
	if s < 0 {
		s = 0
	}
	return colorful.Hsl(h, s, l).Clamped()
}

// Palette is an ordered list of 3..12 hex colors plus the saturation boost
// applied to every entry after the first. The resolved RGBA list is cached
// and recomputed only when the sources or the boost change.
type Palette struct {
	hex   []string
	boost float64

	resolved []color.RGBA
	cacheKey string
}

// New builds a palette from the given hex strings, clamping the length to
// [MinColors, MaxColors]. Short lists are padded with white.
func New(hex []string, boost float64) *Palette {
	p := &Palette{boost: boost}
	for _, h := range hex {
		if len(p.hex) == MaxColors {
			break
		}
		p.hex = append(p.hex, h)
	}
	for len(p.hex) < MinColors {
		p.hex = append(p.hex, "#ffffff")
	}
	return p
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.hex) }

// Hex returns the source hex strings.
func (p *Palette) Hex() []string { return p.hex }

// SetBoost updates the saturation boost factor.
func (p *Palette) SetBoost(factor float64) { p.boost = factor }

// Add appends a hue-rotated variant of the last color. It reports false when
// the palette is already at MaxColors.
func (p *Palette) Add() bool {
	if len(p.hex) >= MaxColors {
		return false
	}
	h, s, l := Parse(p.hex[len(p.hex)-1]).Hsl()
	h = math.Mod(h+addHueStep, 360)
	p.hex = append(p.hex, colorful.Hsl(h, s, l).Clamped().Hex())
	return true
}

// Remove drops the last color. It reports false when the palette is already
// at MinColors.
func (p *Palette) Remove() bool {
	if len(p.hex) <= MinColors {
		return false
	}
	p.hex = p.hex[:len(p.hex)-1]
	return true
}

// Colors resolves the palette to RGBA values: entry 0 as-is, the rest
// saturation-boosted. The result is cached until the sources change.
func (p *Palette) Colors() []color.RGBA {
	key := fmt.Sprintf("%.3f|%s", p.boost, strings.Join(p.hex, ","))
	if key == p.cacheKey && p.resolved != nil {
		return p.resolved
	}

	out := make([]color.RGBA, len(p.hex))
	for i, h := range p.hex {
		c := Parse(h)
		if i > 0 {
			c = Boost(c, p.boost)
		}
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	p.resolved = out
	p.cacheKey = key
	return out
}
