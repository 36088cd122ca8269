package kaleido

import "math"

const (
	// maxDelta bounds one integration step, guarding against large gaps
	// after tab or window suspension.
	maxDelta = 0.050

	// velocityTimeConstant is the first-order smoothing constant (seconds)
	// for pursuing target velocities.
	velocityTimeConstant = 0.18

	// phaseDriftLimit resets unbounded phases before float precision decays.
	phaseDriftLimit = 1e6

	twoPi = 2 * math.Pi
)

// Anim is the per-frame animation state: the three phase scalars and their
// smoothed velocities. It is owned by the render loop and mutated once per
// frame by Advance.
type Anim struct {
	PatternTime float64
	Rotation    float64
	SwirlPhase  float64

	patternVel  float64
	rotationVel float64
	swirlVel    float64
}

// Advance integrates the animation state by dt seconds toward the target
// rates. When running is false, velocities and phases hold their last
// values.
func (a *Anim) Advance(dt float64, target RateTargets, running bool) {
	if !running {
		return
	}
	if dt < 0 {
		dt = 0
	}
	if dt > maxDelta {
		dt = maxDelta
	}

	alpha := 1 - math.Exp(-dt/velocityTimeConstant)
	a.patternVel += alpha * (target.Pattern - a.patternVel)
	a.rotationVel += alpha * (target.Rotation - a.rotationVel)
	a.swirlVel += alpha * (target.Swirl - a.swirlVel)

	a.PatternTime += a.patternVel * dt
	a.Rotation += a.rotationVel * dt
	a.SwirlPhase += a.swirlVel * dt

	if a.Rotation < 0 || a.Rotation >= twoPi {
		a.Rotation = math.Mod(a.Rotation, twoPi)
		if a.Rotation < 0 {
			a.Rotation += twoPi
		}
	}
	if math.Abs(a.PatternTime) > phaseDriftLimit {
		a.PatternTime = 0
	}
	if math.Abs(a.SwirlPhase) > phaseDriftLimit {
		a.SwirlPhase = 0
	}
}

// Reset zeroes all phases and velocities.
func (a *Anim) Reset() {
	*a = Anim{}
}
