//go:build ebiten

package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StatsOverlay draws the frame-rate and render-time readout in the corner
// of the view. Toggled with the F key; visible by default.
type StatsOverlay struct {
	visible bool
}

// NewStatsOverlay constructs a visible overlay.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{visible: true}
}

// Update handles the visibility toggle.
func (o *StatsOverlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.visible = !o.visible
	}
}

// Draw renders the readout when visible.
func (o *StatsOverlay) Draw(screen *ebiten.Image, fps float64, renderDur time.Duration) {
	if o == nil || !o.visible {
		return
	}
	msg := fmt.Sprintf("%5.1f fps  %6.2f ms", fps, float64(renderDur.Microseconds())/1000)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
