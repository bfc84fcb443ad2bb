package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/leveldata"
	"github.com/automoto/nightrain/shared/ninja"
)

// ApplyLevel takes the spawn point and ground level from the level. A sprite
// resting on the floor has its top edge one cell above the floor line.
func ApplyLevel(t gameconfig.Tuning, lvl *leveldata.Level) gameconfig.Tuning {
	if lvl == nil {
		return t
	}
	t.SpawnX = lvl.Spawn.X
	t.GroundLevel = lvl.GroundLevel(float64(cfg.NinjaSheet.TileHeight))
	return t
}

// UpdateTuning applies a changed tuning file at the start of a tick. A file
// that fails to load or validate is ignored and the previous values stay.
func UpdateTuning(ecs *ecs.ECS) {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	td := components.Tuning.Get(entry)
	if td.Watcher == nil {
		return
	}

	changed := false
	for {
		if _, ok := td.Watcher.Poll(); !ok {
			break
		}
		changed = true
	}
	if !changed {
		return
	}

	t, err := gameconfig.LoadTuning(td.Path)
	if err != nil {
		td.LastErr = err
		log.Printf("Warning: keeping previous tuning: %v", err)
		return
	}
	td.LastErr = nil
	td.Reloads++

	var lvl *leveldata.Level
	if e, ok := components.Level.First(ecs.World); ok {
		lvl = components.Level.Get(e).Level
	}
	rules := ninja.NewRules(ApplyLevel(t, lvl), cfg.NinjaAnimations)

	components.Ninja.Each(ecs.World, func(e *donburi.Entry) {
		components.Ninja.Get(e).Sim.SetRules(rules)
	})
	log.Printf("Reloaded tuning from %s", td.Path)
}
