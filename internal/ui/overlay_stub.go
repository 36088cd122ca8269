//go:build !ebiten

package ui

import "time"

// StatsOverlay is a no-op placeholder used when the ebiten build tag is
// absent.
type StatsOverlay struct{}

// NewStatsOverlay constructs a stub overlay.
func NewStatsOverlay() *StatsOverlay { return &StatsOverlay{} }

// Update is a no-op in headless builds.
func (o *StatsOverlay) Update() {}

// Draw is a no-op placeholder.
func (o *StatsOverlay) Draw(any, float64, time.Duration) {}
