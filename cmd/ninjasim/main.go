// Command ninjasim runs the ninja simulation without a window. It reads an
// input script, prints the resolved state of every tick and can export the
// frames it picked as a filmstrip.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/nightrain/shared/anim"
	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/ninja"
	"github.com/automoto/nightrain/shared/replay"
	"github.com/automoto/nightrain/shared/sim"
	"github.com/automoto/nightrain/shared/spritesheet"
)

func main() {
	scriptPath := flag.String("script", "", "Input script (YAML); reads stdin when empty")
	tuningPath := flag.String("tuning", "", "Tuning overrides (YAML)")
	sheetPath := flag.String("sheet", "", "Sprite sheet PNG (placeholder art when empty)")
	filmstrip := flag.String("filmstrip", "", "Write the shown frames to this image")
	columns := flag.Int("columns", 10, "Frames per filmstrip row")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	flag.Parse()

	script, err := loadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	inputs, err := script.Inputs()
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}

	tuning, err := gameconfig.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	table, err := loadTable(*sheetPath)
	if err != nil {
		log.Fatalf("Failed to load sprite sheet: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := sim.New(ninja.NewRules(tuning, &gameconfig.NinjaAnimations), table)
	if script.Name != "" {
		log.Printf("Running %q (%d ticks)", script.Name, len(inputs))
	}
	ticks, err := NewLoop(s, *tickRate, os.Stdout).Run(ctx, inputs)
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *filmstrip != "" {
		frames := make([]image.Image, len(ticks))
		for i, t := range ticks {
			frames[i] = t.Frame.Image
		}
		strip := spritesheet.Filmstrip(frames, *columns, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
		if err := spritesheet.Save(strip, *filmstrip); err != nil {
			log.Fatalf("Failed to write filmstrip: %v", err)
		}
		log.Printf("Wrote %d frames to %s", len(frames), *filmstrip)
	}
}

func loadScript(path string) (*replay.Script, error) {
	if path == "" {
		return replay.Read(os.Stdin)
	}
	return replay.Load(path)
}

func loadTable(path string) (*anim.Table[image.Image], error) {
	var sheet image.Image = spritesheet.Placeholder(gameconfig.NinjaSheet)
	if path != "" {
		var err error
		if sheet, err = spritesheet.Load(path); err != nil {
			return nil, err
		}
	}
	return spritesheet.Slice(sheet, gameconfig.NinjaSheet, &gameconfig.NinjaAnimations)
}
