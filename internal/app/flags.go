package app

import (
	"flag"
	"strings"

	"github.com/Mecca-Research/interactive-kaleidoscope/internal/kaleido"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Panel  int

	Segments      int
	Complexity    int
	Colors        string
	PatternSpeed  float64
	RotationRate  float64
	SwirlRate     float64
	Sensitivity   float64
	Saturation    float64
	PixelRatioCap float64
	Paused        bool
}

// NewConfig returns a Config populated with the scene defaults.
func NewConfig() *Config {
	def := kaleido.DefaultConfig()
	return &Config{
		Width:         def.Width,
		Height:        def.Height,
		Panel:         260,
		Segments:      def.Params.Segments,
		Complexity:    def.Params.Complexity,
		Colors:        strings.Join(def.Colors, ","),
		PatternSpeed:  def.Params.PatternSpeed,
		RotationRate:  def.Params.RotationRate,
		SwirlRate:     def.Params.SwirlRate,
		Sensitivity:   def.Params.Sensitivity,
		Saturation:    def.Params.SaturationBoost,
		PixelRatioCap: def.Params.PixelRatioCap,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.IntVar(&c.Panel, "panel", c.Panel, "control panel width (0 hides it)")
	fs.IntVar(&c.Segments, "segments", c.Segments, "number of mirrored wedges [3,64]")
	fs.IntVar(&c.Complexity, "complexity", c.Complexity, "harmonic layer count [1,16]")
	fs.StringVar(&c.Colors, "colors", c.Colors, "comma-separated hex palette (3..12 entries)")
	fs.Float64Var(&c.PatternSpeed, "pattern-speed", c.PatternSpeed, "pattern speed slider [0,1]")
	fs.Float64Var(&c.RotationRate, "rotation-rate", c.RotationRate, "rotation slider [-1,1]")
	fs.Float64Var(&c.SwirlRate, "swirl-rate", c.SwirlRate, "swirl slider [0,1]")
	fs.Float64Var(&c.Sensitivity, "sensitivity", c.Sensitivity, "sensitivity slider [0,1]")
	fs.Float64Var(&c.Saturation, "saturation", c.Saturation, "palette saturation boost [1.0,2.2]")
	fs.Float64Var(&c.PixelRatioCap, "dpr-cap", c.PixelRatioCap, "device pixel ratio cap [1,2.5]")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the animation paused")
}

// SceneConfig converts the flag values into a scene configuration. Out of
// range values are clamped by the scene constructor.
func (c *Config) SceneConfig() kaleido.Config {
	cfg := kaleido.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Params.Segments = c.Segments
	cfg.Params.Complexity = c.Complexity
	cfg.Params.Running = !c.Paused
	cfg.Params.PatternSpeed = c.PatternSpeed
	cfg.Params.RotationRate = c.RotationRate
	cfg.Params.SwirlRate = c.SwirlRate
	cfg.Params.Sensitivity = c.Sensitivity
	cfg.Params.SaturationBoost = c.Saturation
	cfg.Params.PixelRatioCap = c.PixelRatioCap

	if colors := strings.Split(c.Colors, ","); len(colors) > 0 {
		cfg.Colors = cfg.Colors[:0]
		for _, col := range colors {
			if col = strings.TrimSpace(col); col != "" {
				cfg.Colors = append(cfg.Colors, col)
			}
		}
	}
	return cfg
}
