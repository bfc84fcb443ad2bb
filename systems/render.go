package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel clears the screen and draws the floor line.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	width := float32(screen.Bounds().Dx())
	vector.StrokeLine(screen,
		0, float32(level.FloorY),
		width, float32(level.FloorY),
		cfg.UI.GroundThickness, cfg.UI.GroundColor, false)
}

// DrawGhosts renders the dash after-images behind the ninja.
func DrawGhosts(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Ghost.Each(ecs.World, func(e *donburi.Entry) {
		ghost := components.Ghost.Get(e)
		if ghost.Image == nil || ghost.Alpha <= 0 {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(ghost.X, ghost.Y)
		drawOp.ColorScale.ScaleWithColor(cfg.Effects.GhostTint)
		drawOp.ColorScale.ScaleAlpha(ghost.Alpha)
		screen.DrawImage(ghost.Image, drawOp)
	})
}

// DrawNinja blits the current frame with its top-left corner at the ninja's
// position. Facing left already picked a mirrored frame.
func DrawNinja(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Ninja.Each(ecs.World, func(e *donburi.Entry) {
		img := components.Animation.Get(e).Current.Image
		if img == nil {
			return
		}
		st := components.Ninja.Get(e).Sim.State()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(st.X, st.Y)
		screen.DrawImage(img, drawOp)
	})
}
