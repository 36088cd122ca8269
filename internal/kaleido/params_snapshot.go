package kaleido

import (
	"strconv"

	"github.com/Mecca-Research/interactive-kaleidoscope/internal/core"
	"github.com/Mecca-Research/interactive-kaleidoscope/internal/palette"
)

// Parameters reports the current knob values for the HUD.
func (k *Kaleidoscope) Parameters() core.ParameterSnapshot {
	p := k.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Pattern",
			Params: []core.Parameter{
				intParam("segments", "Segments", p.Segments),
				intParam("complexity", "Complexity", p.Complexity),
				intParam("colors", "Colors", k.pal.Len()),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				boolParam("running", "Running", p.Running),
				floatParam("pattern_speed", "Pattern speed", p.PatternSpeed),
				floatParam("rotation_rate", "Rotation rate", p.RotationRate),
				floatParam("swirl_rate", "Swirl rate", p.SwirlRate),
				floatParam("sensitivity", "Sensitivity", p.Sensitivity),
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				floatParam("saturation_boost", "Saturation boost", p.SaturationBoost),
				floatParam("pixel_ratio_cap", "Pixel ratio cap", p.PixelRatioCap),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the knobs the HUD exposes as adjustable rows.
func (k *Kaleidoscope) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "running", Label: "Running", Type: core.ParamTypeBool},
		{Key: "segments", Label: "Segments", Type: core.ParamTypeInt, Step: 1, Min: MinSegments, Max: MaxSegments, HasMin: true, HasMax: true},
		{Key: "complexity", Label: "Complexity", Type: core.ParamTypeInt, Step: 1, Min: MinComplexity, Max: MaxComplexity, HasMin: true, HasMax: true},
		{Key: "colors", Label: "Colors", Type: core.ParamTypeInt, Step: 1, Min: palette.MinColors, Max: palette.MaxColors, HasMin: true, HasMax: true},
		{Key: "pattern_speed", Label: "Pattern speed", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "rotation_rate", Label: "Rotation rate", Type: core.ParamTypeFloat, Step: 0.05, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "swirl_rate", Label: "Swirl rate", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "sensitivity", Label: "Sensitivity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "saturation_boost", Label: "Saturation boost", Type: core.ParamTypeFloat, Step: 0.1, Min: MinSaturationBoost, Max: MaxSaturationBoost, HasMin: true, HasMax: true},
		{Key: "pixel_ratio_cap", Label: "Pixel ratio cap", Type: core.ParamTypeFloat, Step: 0.25, Min: MinPixelRatioCap, Max: MaxPixelRatioCap, HasMin: true, HasMax: true},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
