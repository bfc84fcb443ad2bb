package factory

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/nightrain/assets"
	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/shared/anim"
)

// GenerateAnimations cuts every ninja state out of the sheet at sheetPath
// (placeholder art when empty). Mirrored frames are built here once, never
// per tick.
func GenerateAnimations(sheetPath string) *components.AnimationData {
	layout := cfg.NinjaSheet

	var table anim.Table[*ebiten.Image]
	for state, def := range cfg.NinjaAnimations {
		frames := make([]*ebiten.Image, len(def.Cells))
		mirrored := make([]*ebiten.Image, len(def.Cells))
		for i, cell := range def.Cells {
			frames[i] = assets.GetFrame(sheetPath, layout, cell)
			mirrored[i] = assets.GetMirroredFrame(sheetPath, layout, cell)
		}
		table[state] = anim.Sequence[*ebiten.Image]{
			Frames:   frames,
			Mirrored: mirrored,
			Speed:    def.Speed,
		}
	}

	return &components.AnimationData{
		Table:       &table,
		FrameWidth:  layout.TileWidth,
		FrameHeight: layout.TileHeight,
	}
}
