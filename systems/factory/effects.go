package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/archetypes"
	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
)

// SpawnGhost leaves a fading copy of img at (x, y). It fades out over the
// given number of ticks.
func SpawnGhost(ecs *ecs.ECS, img *ebiten.Image, x, y float64, ticks int) *donburi.Entry {
	if ticks < 1 {
		ticks = 1
	}
	entry := archetypes.Ghost.Spawn(ecs)

	start := cfg.Effects.GhostStartAlpha
	components.Ghost.SetValue(entry, components.GhostData{
		Image: img,
		X:     x,
		Y:     y,
		Alpha: start,
	})
	components.Tween.Set(entry, gween.New(start, 0, float32(ticks), ease.OutQuad))

	return entry
}
