package config

import "github.com/automoto/nightrain/shared/gameconfig"

// Type aliases so client code can keep using config.StateID.
type StateID = gameconfig.StateID
type ActionID = gameconfig.ActionID

// Re-export ninja state constants.
const (
	StateNone = gameconfig.StateNone

	Idle     = gameconfig.Idle
	Run      = gameconfig.Run
	Jump     = gameconfig.Jump
	Fall     = gameconfig.Fall
	Climb    = gameconfig.Climb
	Dash     = gameconfig.Dash
	Slash    = gameconfig.Slash
	Shuriken = gameconfig.Shuriken
)

// Re-export action constants.
const (
	ActionNone        = gameconfig.ActionNone
	ActionMoveLeft    = gameconfig.ActionMoveLeft
	ActionMoveRight   = gameconfig.ActionMoveRight
	ActionJump        = gameconfig.ActionJump
	ActionClimbUp     = gameconfig.ActionClimbUp
	ActionDash        = gameconfig.ActionDash
	ActionAttack      = gameconfig.ActionAttack
	ActionThrow       = gameconfig.ActionThrow
	ActionPause       = gameconfig.ActionPause
	ActionToggleDebug = gameconfig.ActionToggleDebug
	ActionReset       = gameconfig.ActionReset
	ActionCount       = gameconfig.ActionCount
)
