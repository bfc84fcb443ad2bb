package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/systems/factory"
)

// UpdateNinja runs one simulation tick per ninja with this frame's input.
// Must run AFTER UpdateInput.
func UpdateNinja(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if input.JustPressed(cfg.ActionReset) {
		ResetNinja(ecs)
	}

	components.Ninja.Each(ecs.World, func(e *donburi.Entry) {
		nd := components.Ninja.Get(e)
		animData := components.Animation.Get(e)

		// What is on screen right now, for the after-image
		before := nd.Sim.State()
		shown := animData.Current.Image

		tick := nd.Sim.Step(input.Current)
		nd.Last = tick
		animData.Current = tick.Frame
		components.State.Get(e).Enter(tick.Outcome.State)

		if tick.Outcome.DashStarted && shown != nil {
			factory.SpawnGhost(ecs, shown, before.X, before.Y, nd.Sim.Rules().DashDuration)
		}
	})
}

// ResetNinja puts every ninja back at its spawn point.
func ResetNinja(ecs *ecs.ECS) {
	components.Ninja.Each(ecs.World, func(e *donburi.Entry) {
		components.Ninja.Get(e).Sim.Reset()
		components.Animation.Get(e).Current.Image = nil
	})
}
