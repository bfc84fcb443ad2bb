package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/shared/ninja"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         ninja.Input // Current frame's Pressed state
	Previous        ninja.Input // Previous frame's Pressed state
	LastInputMethod InputMethod // Most recently used input method
}

func (d *InputData) Pressed(action cfg.ActionID) bool {
	return d.Current.Pressed(action)
}

func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current.Pressed(action) && !d.Previous.Pressed(action)
}

func (d *InputData) JustReleased(action cfg.ActionID) bool {
	return !d.Current.Pressed(action) && d.Previous.Pressed(action)
}

var Input = donburi.NewComponentType[InputData]()
