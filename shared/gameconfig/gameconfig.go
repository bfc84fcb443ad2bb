// Package gameconfig defines the state and action identifiers, tuning values and
// animation table shared by the simulation core, the headless tools and the game
// client. It must have zero dependencies on ebiten or any graphics library so the
// core stays testable without a display.
package gameconfig

import (
	"fmt"
	"strings"
)

// StateID identifies a resolved animation state of the ninja.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota - 1
	Run
	Jump
	Fall
	Climb
	Dash
	Slash
	Shuriken

	StateCount // Must be last - used for array sizing
)

// StateNames maps StateID to the name used in config files and logs.
var StateNames = [StateCount]string{
	Idle:     "idle",
	Run:      "run",
	Jump:     "jump",
	Fall:     "fall",
	Climb:    "climb",
	Dash:     "dash",
	Slash:    "slash",
	Shuriken: "shuriken",
}

func (s StateID) String() string {
	if s.Valid() {
		return StateNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the eight animation states.
func (s StateID) Valid() bool {
	return s >= 0 && s < StateCount
}

// ParseState returns the StateID for a state name.
func ParseState(name string) (StateID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range StateNames {
		if n == name {
			return StateID(id), nil
		}
	}
	return StateNone, fmt.Errorf("unknown state %q", name)
}

// OneShot reports whether a state plays once per activation and freezes on its
// final frame instead of looping.
func OneShot(s StateID) bool {
	return s == Slash || s == Shuriken
}

// ActionID represents a logical input button.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionClimbUp
	ActionDash
	ActionAttack
	ActionThrow
	ActionPause
	ActionToggleDebug
	ActionReset
	ActionCount // Must be last - used for array sizing
)

// ActionNames maps ActionID to the name used in replay scripts.
var ActionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionJump:        "jump",
	ActionClimbUp:     "climb",
	ActionDash:        "dash",
	ActionAttack:      "attack",
	ActionThrow:       "throw",
	ActionPause:       "pause",
	ActionToggleDebug: "debug",
	ActionReset:       "reset",
}

func (a ActionID) String() string {
	if a >= 0 && a < ActionCount {
		return ActionNames[a]
	}
	return "unknown"
}

// ParseAction returns the ActionID for an action name. "none" is rejected.
func ParseAction(name string) (ActionID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range ActionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
