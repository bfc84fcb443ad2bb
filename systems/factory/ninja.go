package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/archetypes"
	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/shared/ninja"
	"github.com/automoto/nightrain/shared/sim"
	"github.com/automoto/nightrain/tags"
)

// CreateNinja spawns the controllable ninja. Its spawn point and ground level
// come from rules.
func CreateNinja(ecs *ecs.ECS, rules ninja.Rules, sheetPath string) *donburi.Entry {
	entry := archetypes.Ninja.Spawn(ecs)

	animData := GenerateAnimations(sheetPath)
	components.Animation.Set(entry, animData)

	s := sim.New(rules, animData.Table)
	components.Ninja.SetValue(entry, components.NinjaData{Sim: s})

	components.State.SetValue(entry, components.StateData{
		CurrentState:  cfg.StateNone,
		PreviousState: cfg.StateNone,
	})

	// Collision box sits centered at the bottom of the sprite cell
	w, h := cfg.Ninja.CollisionWidth, cfg.Ninja.CollisionHeight
	offX := (float64(cfg.Ninja.FrameWidth) - w) / 2
	offY := float64(cfg.Ninja.FrameHeight) - h

	st := s.State()
	obj := resolv.NewObject(st.X+offX, st.Y+offY, w, h, tags.ResolvNinja)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{
		Object:  obj,
		OffsetX: offX,
		OffsetY: offY,
	})

	return entry
}
