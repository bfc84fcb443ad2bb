package scenes

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/archetypes"
	"github.com/automoto/nightrain/assets"
	"github.com/automoto/nightrain/components"
	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/hotreload"
	"github.com/automoto/nightrain/shared/ninja"
	"github.com/automoto/nightrain/systems"
	"github.com/automoto/nightrain/systems/factory"
	"github.com/automoto/nightrain/ui"
)

// NinjaScene is the dojo with the controllable ninja.
type NinjaScene struct {
	ecs    *ecs.ECS
	hud    *ui.HUDUI
	tuning gameconfig.Tuning
	once   sync.Once
}

// NewNinjaScene takes the tuning loaded at startup. Ground level and spawn
// point are replaced by the level's.
func NewNinjaScene(t gameconfig.Tuning) *NinjaScene {
	return &NinjaScene{tuning: t}
}

func (ns *NinjaScene) Update() {
	ns.once.Do(ns.configure)
	ns.ecs.Update()

	if status, ok := systems.ReadHUD(ns.ecs); ok {
		ns.hud.Refresh(status)
	}
	ns.hud.Update()
}

func (ns *NinjaScene) Draw(screen *ebiten.Image) {
	if ns.ecs == nil {
		screen.Fill(cfg.UI.BackgroundColor)
		return
	}
	ns.ecs.Draw(screen)
	ns.hud.Draw(screen)
}

// Close stops the tuning watcher, if any.
func (ns *NinjaScene) Close() error {
	if ns.ecs == nil {
		return nil
	}
	if e, ok := components.Tuning.First(ns.ecs.World); ok {
		if w := components.Tuning.Get(e).Watcher; w != nil {
			return w.Close()
		}
	}
	return nil
}

func (ns *NinjaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Tick order: new tuning, then the simulation, then what follows from it
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTuning))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateNinja))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawGhosts)
	ecs.AddRenderer(cfg.Default, systems.DrawNinja)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ns.ecs = ecs

	lvl := assets.MustLoadLevel(cfg.Level.Path)
	spaceEntry := factory.CreateSpace(ns.ecs, lvl.Width, max(lvl.Height, int(lvl.Floor().Y)+cfg.Ninja.FrameHeight), 32, 32)
	space := components.Space.Get(spaceEntry)
	factory.CreateLevel(ns.ecs, lvl, space)

	rules := ninja.NewRules(systems.ApplyLevel(ns.tuning, lvl), cfg.NinjaAnimations)
	ninjaEntry := factory.CreateNinja(ns.ecs, rules, cfg.Ninja.SheetPath)
	space.Add(components.Object.Get(ninjaEntry).Object)

	ns.configureTuning()

	ns.hud = ui.NewHUDUI()
}

func (ns *NinjaScene) configureTuning() {
	entry := archetypes.Tuning.Spawn(ns.ecs)
	td := components.TuningData{Path: cfg.Debug.TuningPath}

	if cfg.Debug.WatchTuning && td.Path != "" {
		w, err := hotreload.NewWatcher(cfg.Debug.ReloadSettle, td.Path)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", td.Path, err)
		} else {
			td.Watcher = w
			log.Printf("Watching %s for changes", td.Path)
		}
	}
	components.Tuning.SetValue(entry, td)
}
