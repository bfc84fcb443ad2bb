package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightrain/shared/hotreload"
)

// TuningData tracks where the physics constants came from so they can be
// reloaded while playing.
type TuningData struct {
	Path    string
	Watcher *hotreload.Watcher // nil unless -watch is set
	Reloads int
	LastErr error
}

var Tuning = donburi.NewComponentType[TuningData]()
