package kaleido

import "math"

// DefaultGainSteepness is the k of the slider gain curve: near-linear for
// small inputs, saturating toward 1.
const DefaultGainSteepness = 2.4

// Sensitivity shaping constants, empirically tuned.
const (
	sensFloor    = 0.22
	sensRange    = 0.50
	sensExponent = 1.15
)

// Full-deflection rates in phase units (or radians) per second.
const (
	maxPatternRate  = 1.6
	maxRotationRate = 0.9
	maxSwirlRate    = 1.2
)

// SliderGain maps a normalized 0..1 slider value through an exponential
// response curve: (1 - e^(-kx)) / (1 - e^(-k)). Gain(0) is exactly 0 and
// Gain(1) exactly 1 for any k > 0.
func SliderGain(x, k float64) float64 {
	x = clamp(x, 0, 1)
	if k <= 0 {
		return x
	}
	return (1 - math.Exp(-k*x)) / (1 - math.Exp(-k))
}

// SensitivityShape maps 0..1 sensitivity to the effective speed multiplier
// in [0.22, 0.72].
func SensitivityShape(s float64) float64 {
	s = clamp(s, 0, 1)
	return sensFloor + sensRange*math.Pow(s, sensExponent)
}

// RateTargets are the velocities the integrator pursues, in units per second.
type RateTargets struct {
	Pattern  float64
	Rotation float64
	Swirl    float64
}

// TargetRates composes the slider gain and sensitivity shaping into the
// effective per-second rates for the current knob values. Rotation carries
// the sign of its raw input.
func TargetRates(p Params) RateTargets {
	sens := SensitivityShape(p.Sensitivity)

	rot := clamp(p.RotationRate, -1, 1)
	rotSign := 1.0
	if rot < 0 {
		rotSign = -1
		rot = -rot
	}

	return RateTargets{
		Pattern:  maxPatternRate * sens * SliderGain(p.PatternSpeed, DefaultGainSteepness),
		Rotation: rotSign * maxRotationRate * sens * SliderGain(rot, DefaultGainSteepness),
		Swirl:    maxSwirlRate * sens * SliderGain(p.SwirlRate, DefaultGainSteepness),
	}
}
