package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
	"github.com/automoto/nightrain/tags"
)

// UpdateObjects moves the ninja's collision box to where its sprite is drawn
// and checks it against the floors.
func UpdateObjects(ecs *ecs.ECS) {
	space := getSpace(ecs)

	components.Ninja.Each(ecs.World, func(e *donburi.Entry) {
		nd := components.Ninja.Get(e)
		obj := components.Object.Get(e)

		if space != nil && obj.Space == nil {
			space.Add(obj.Object)
		}

		st := nd.Sim.State()
		obj.Follow(st.X, st.Y)

		nd.OnFloor = false
		if obj.Space != nil {
			nd.OnFloor = obj.Check(0, 1, tags.ResolvSolid) != nil
		}
	})
}
