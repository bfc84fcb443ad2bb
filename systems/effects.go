package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
)

// UpdateEffects fades the dash after-images and removes finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Ghost.Each(ecs.World, func(e *donburi.Entry) {
		ghost := components.Ghost.Get(e)
		alpha, done := components.Tween.Get(e).Update(1)
		ghost.Alpha = alpha
		if done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}
