package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/archetypes"
	"github.com/automoto/nightrain/components"
	"github.com/automoto/nightrain/shared/leveldata"
	"github.com/automoto/nightrain/tags"
)

// CreateLevel registers the level and adds its floors to the space as solid
// objects.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, space *resolv.Space) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Level:  lvl,
		FloorY: lvl.Floor().Y,
	})

	for _, f := range lvl.Floors {
		CreateGround(ecs, space, f)
	}
	return level
}

func CreateGround(ecs *ecs.ECS, space *resolv.Space, r leveldata.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	h := r.H
	if h <= 0 {
		h = 1
	}
	obj := resolv.NewObject(r.X, r.Y, r.W, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, h))
	obj.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	space.Add(obj)

	return ground
}
