package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/tags"
)

var (
	Ninja = newArchetype(
		tags.Ninja,
		components.Ninja,
		components.Object,
		components.Animation,
		components.State,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
		components.Tween,
	)
	Tuning = newArchetype(
		components.Tuning,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
