package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/fonts"
	"github.com/automoto/nightrain/tags"
)

// DrawDebug outlines every collision object and the sprite cell, and prints
// the ninja's timers next to it.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).ShowDebug {
		return
	}

	if space := getSpace(ecs); space != nil {
		for _, obj := range space.Objects() {
			c := cfg.UI.DebugBoxColors["ground"]
			if obj.HasTags(tags.ResolvNinja) {
				c = cfg.UI.DebugBoxColors["ninja"]
			}
			strokeBox(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	components.Ninja.Each(ecs.World, func(e *donburi.Entry) {
		nd := components.Ninja.Get(e)
		animData := components.Animation.Get(e)
		st := nd.Sim.State()
		strokeBox(screen, st.X, st.Y, float64(animData.FrameWidth), float64(animData.FrameHeight),
			cfg.UI.DebugBoxColors["sprite"])

		cur := nd.Sim.Cursor()
		lines := []string{
			fmt.Sprintf("pos %.1f, %.1f  vy %.2f", st.X, st.Y, st.SpeedY),
			fmt.Sprintf("frame %s[%d] timer %d", animData.Current.State, cur.Index, cur.Timer),
			fmt.Sprintf("dash %d/%d  slash %d/%d  shuriken %d/%d",
				st.Dash.Active, st.Dash.Cooldown,
				st.Slash.Active, st.Slash.Cooldown,
				st.Shuriken.Active, st.Shuriken.Cooldown),
			fmt.Sprintf("ground %v  floor contact %v  climbing %v", st.OnGround, nd.OnFloor, st.Climbing),
		}
		drawLines(screen, lines, st.X, st.Y-float64(len(lines))*16, cfg.UI.DebugTextColor)
	})
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

func drawLines(screen *ebiten.Image, lines []string, x, y float64, c color.Color) {
	face := fonts.Small.Face()
	_, lineHeight := text.Measure("Ag", face, 0)

	op := &text.DrawOptions{}
	for i, line := range lines {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, line, face, op)
	}
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
