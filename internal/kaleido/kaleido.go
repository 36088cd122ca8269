// Package kaleido implements the animated kaleidoscope scene: control
// mapping, the animation integrator, and the wedge geometry tables the
// renderer strokes each frame.
package kaleido

import (
	"github.com/Mecca-Research/interactive-kaleidoscope/internal/palette"
)

// Kaleidoscope owns the animation state, geometry cache and palette for one
// scene instance. It is driven by the render loop and adjusted by the HUD
// through the parameter setter interfaces.
type Kaleidoscope struct {
	cfg   Config
	anim  Anim
	cache Cache
	pal   *palette.Palette
}

// New constructs a scene from the provided configuration. Knobs are clamped
// into their documented ranges up front.
func New(cfg Config) *Kaleidoscope {
	cfg.Params.Clamp()
	return &Kaleidoscope{
		cfg: cfg,
		pal: palette.New(cfg.Colors, cfg.Params.SaturationBoost),
	}
}

// Name returns the scene identifier.
func (k *Kaleidoscope) Name() string { return "kaleidoscope" }

// Params returns a copy of the current knob values.
func (k *Kaleidoscope) Params() Params { return k.cfg.Params }

// Anim exposes the animation state for the renderer.
func (k *Kaleidoscope) Anim() *Anim { return &k.anim }

// Palette exposes the stroke palette.
func (k *Kaleidoscope) Palette() *palette.Palette { return k.pal }

// Advance steps the animation state by dt seconds.
func (k *Kaleidoscope) Advance(dt float64) {
	k.anim.Advance(dt, TargetRates(k.cfg.Params), k.cfg.Params.Running)
}

// Geometry returns the sample tables for the current segment and complexity
// knobs, rebuilding them only when either changed since the last call.
func (k *Kaleidoscope) Geometry() *Cache {
	k.cache.Ensure(k.cfg.Params.Segments, k.cfg.Params.Complexity)
	return &k.cache
}

// ResetPhases zeroes the animation phases without touching the knobs.
func (k *Kaleidoscope) ResetPhases() { k.anim.Reset() }

// SetIntParameter updates an integer knob, clamped to its range. It reports
// whether the key was recognized.
func (k *Kaleidoscope) SetIntParameter(key string, value int) bool {
	switch key {
	case "segments":
		k.cfg.Params.Segments = clampInt(value, MinSegments, MaxSegments)
	case "complexity":
		k.cfg.Params.Complexity = clampInt(value, MinComplexity, MaxComplexity)
	case "colors":
		for k.pal.Len() < value && k.pal.Add() {
		}
		for k.pal.Len() > value && k.pal.Remove() {
		}
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float knob, clamped to its range. It reports
// whether the key was recognized.
func (k *Kaleidoscope) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "pattern_speed":
		k.cfg.Params.PatternSpeed = clamp(value, 0, 1)
	case "rotation_rate":
		k.cfg.Params.RotationRate = clamp(value, -1, 1)
	case "swirl_rate":
		k.cfg.Params.SwirlRate = clamp(value, 0, 1)
	case "sensitivity":
		k.cfg.Params.Sensitivity = clamp(value, 0, 1)
	case "saturation_boost":
		k.cfg.Params.SaturationBoost = clamp(value, MinSaturationBoost, MaxSaturationBoost)
		k.pal.SetBoost(k.cfg.Params.SaturationBoost)
	case "pixel_ratio_cap":
		k.cfg.Params.PixelRatioCap = clamp(value, MinPixelRatioCap, MaxPixelRatioCap)
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a boolean knob. It reports whether the key was
// recognized.
func (k *Kaleidoscope) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "running":
		k.cfg.Params.Running = value
	default:
		return false
	}
	return true
}
