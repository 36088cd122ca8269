//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Mecca-Research/interactive-kaleidoscope/internal/core"
	"github.com/Mecca-Research/interactive-kaleidoscope/internal/kaleido"
	"github.com/Mecca-Research/interactive-kaleidoscope/internal/render"
	"github.com/Mecca-Research/interactive-kaleidoscope/internal/ui"
)

var backgroundColor = color.RGBA{R: 8, G: 9, B: 14, A: 255}

// Game adapts the kaleidoscope scene to the ebiten.Game interface. Each
// frame runs the fixed pipeline: clamp delta, integrate the animation,
// rebuild geometry if a knob changed, stroke the wedge, stamp it around the
// circle.
type Game struct {
	scene *kaleido.Kaleidoscope
	wedge *render.WedgeRenderer
	hud   *ui.HUD
	stats *ui.StatsOverlay

	clock *core.FrameClock
	meter core.FPSMeter

	showPanel bool
	scale     float64

	width  int
	height int
}

// New constructs a Game for the provided scene.
func New(scene *kaleido.Kaleidoscope, panelWidth int) *Game {
	return &Game{
		scene:     scene,
		wedge:     render.NewWedgeRenderer(),
		hud:       ui.NewHUD(scene, panelWidth),
		stats:     ui.NewStatsOverlay(),
		clock:     core.NewFrameClock(),
		showPanel: panelWidth > 0,
		scale:     1,
	}
}

// Update handles input and advances the animation state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.SetBoolParameter("running", !g.scene.Params().Running)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.ResetPhases()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showPanel = !g.showPanel
	}
	g.stats.Update()

	dt := g.clock.Delta()
	g.scene.Advance(dt)
	g.meter.Tick(dt)

	if g.showPanel {
		g.hud.Update(g.viewWidth())
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	g.width = bounds.Dx()
	g.height = bounds.Dy()

	viewW := g.viewWidth()
	radius := 0.48 * float64(min(viewW, g.height))
	p := g.scene.Params()
	anim := g.scene.Anim()

	wedge := g.wedge.Render(
		g.scene.Geometry(),
		kaleido.PhasesAt(anim.PatternTime, anim.SwirlPhase),
		g.scene.Palette().Colors(),
		radius,
		kaleido.WedgeSpan(p.Segments)/2,
	)
	render.CompositeFrame(screen, wedge, p.Segments, anim.Rotation, float64(viewW)/2, float64(g.height)/2)

	if g.showPanel {
		g.hud.Draw(screen, viewW, g.height)
	}
	g.meter.ObserveRender(time.Since(start))
	g.stats.Draw(screen, g.meter.FPS(), g.meter.LastRender())
}

// Layout scales the backing resolution by the monitor's device scale
// factor, bounded by the pixel-ratio cap knob. Ebiten calls this whenever
// the window or monitor changes, which keeps the buffer fitted on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if cap := g.scene.Params().PixelRatioCap; scale > cap {
		scale = cap
	}
	if scale < 1 {
		scale = 1
	}
	g.scale = scale
	g.width = int(float64(outsideWidth) * scale)
	g.height = int(float64(outsideHeight) * scale)
	return g.width, g.height
}

func (g *Game) viewWidth() int {
	if !g.showPanel {
		return g.width
	}
	w := g.width - g.hud.Width()
	if w < 0 {
		w = 0
	}
	return w
}
