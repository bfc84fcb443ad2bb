package ninja

import "github.com/automoto/nightrain/shared/gameconfig"

// Input is the per-tick snapshot of which logical buttons are held down.
type Input [gameconfig.ActionCount]bool

// Pressed reports whether an action is held in this snapshot.
func (in Input) Pressed(id gameconfig.ActionID) bool {
	if id < 0 || id >= gameconfig.ActionCount {
		return false
	}
	return in[id]
}

// InputOf builds a snapshot with the given actions held.
func InputOf(ids ...gameconfig.ActionID) Input {
	var in Input
	for _, id := range ids {
		if id >= 0 && id < gameconfig.ActionCount {
			in[id] = true
		}
	}
	return in
}

func (in Input) horizontal() bool {
	return in[gameconfig.ActionMoveLeft] || in[gameconfig.ActionMoveRight]
}
