package components

import (
	"github.com/automoto/nightrain/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // Ticks spent in CurrentState
}

// Enter records the state resolved this tick.
func (s *StateData) Enter(state config.StateID) {
	if state == s.CurrentState {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 1
}

var State = donburi.NewComponentType[StateData]()
