package systems

import (
	"fmt"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightrain/components"
)

// HUDStatus is what the HUD panel shows about the ninja.
type HUDStatus struct {
	State    string
	Frame    string
	Dash     string
	Slash    string
	Shuriken string
	Tuning   string
	Controls string
}

// ReadHUD collects the HUD lines for the first ninja.
func ReadHUD(ecs *ecs.ECS) (HUDStatus, bool) {
	entry, ok := components.Ninja.First(ecs.World)
	if !ok {
		return HUDStatus{}, false
	}
	nd := components.Ninja.Get(entry)
	state := components.State.Get(entry)
	frame := components.Animation.Get(entry).Current
	st := nd.Sim.State()
	rules := nd.Sim.Rules()

	hud := HUDStatus{
		State:    fmt.Sprintf("%s (%d ticks)", state.CurrentState, state.StateTimer),
		Frame:    fmt.Sprintf("%s #%d", frame.State, frame.Index),
		Dash:     timerLine("Dash", st.Dash.Active, st.Dash.Cooldown, rules.DashCooldown),
		Slash:    timerLine("Slash", st.Slash.Active, st.Slash.Cooldown, rules.SlashCooldown),
		Shuriken: timerLine("Shuriken", st.Shuriken.Active, st.Shuriken.Cooldown, rules.ShurikenCooldown),
		Controls: controlsHint(getOrCreateInput(ecs).LastInputMethod),
	}
	if frame.Mirrored {
		hud.Frame += " (mirrored)"
	}

	if e, ok := components.Tuning.First(ecs.World); ok {
		t := components.Tuning.Get(e)
		switch {
		case t.LastErr != nil:
			hud.Tuning = "Tuning: rejected, keeping previous"
		case t.Reloads > 0:
			hud.Tuning = fmt.Sprintf("Tuning: reloaded %dx", t.Reloads)
		case t.Path != "":
			hud.Tuning = "Tuning: " + t.Path
		}
	}
	return hud, true
}

func timerLine(name string, active, cooldown, total int) string {
	switch {
	case active > 0:
		return fmt.Sprintf("%s: active %d", name, active)
	case cooldown > 0:
		return fmt.Sprintf("%s: cooldown %d/%d", name, cooldown, total)
	}
	return name + ": ready"
}

func controlsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad move  A jump  Up climb  RB dash  X slash  B shuriken  Start pause"
	}
	return "A/D move  Space jump  W climb  J dash  K slash  L shuriken  R reset  P pause  F3 debug"
}
