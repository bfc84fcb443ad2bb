package components

import "github.com/yohamta/donburi"

// PauseData stores whether the simulation is frozen and whether the debug
// overlay is shown.
type PauseData struct {
	IsPaused  bool
	ShowDebug bool
}

var Pause = donburi.NewComponentType[PauseData]()
