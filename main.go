package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/fonts"
	"github.com/automoto/nightrain/scenes"
	"github.com/automoto/nightrain/shared/gameconfig"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(t gameconfig.Tuning) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewNinjaScene(t),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "Tuning overrides (YAML)")
	flag.StringVar(&config.Ninja.SheetPath, "sheet", "", "Ninja sprite sheet PNG (placeholder art when empty)")
	flag.StringVar(&config.Level.Path, "level", config.Level.Path, "Embedded level to load")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Start with the debug overlay on")
	flag.BoolVar(&config.Debug.WatchTuning, "watch", false, "Reload the tuning file when it changes")
	flag.Parse()

	tuning, err := gameconfig.LoadTuning(config.Debug.TuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(tuning)
	defer func() {
		if c, ok := game.scene.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
