package core

// Scene defines the minimal contract an animated scene must implement. The
// app drives Advance once per frame with the clamped delta in seconds; the
// HUD discovers tunables through Parameters and the optional setter
// interfaces.
type Scene interface {
	Name() string
	Advance(dt float64)
	Parameters() ParameterSnapshot
}
