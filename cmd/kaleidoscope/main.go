//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Mecca-Research/interactive-kaleidoscope/internal/app"
	"github.com/Mecca-Research/interactive-kaleidoscope/internal/kaleido"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene := kaleido.New(cfg.SceneConfig())
	game := app.New(scene, cfg.Panel)

	ebiten.SetWindowTitle("kaleidoscope")
	ebiten.SetWindowSize(cfg.Width+cfg.Panel, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
