// Package ninja advances the ninja's physics and action timers one tick at a
// time and resolves the single animation state the tick should show.
package ninja

import (
	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/gamemath"
)

// Body is the continuous physical state. Y grows downward and never passes the
// ground level.
type Body struct {
	X, Y        float64
	SpeedY      float64
	FacingRight bool
	OnGround    bool
	Climbing    bool
}

// State is everything the resolver carries from one tick to the next.
type State struct {
	Body

	Slash    ActionTimer
	Shuriken ActionTimer
	Dash     ActionTimer

	Attacking bool
	Throwing  bool
	MoveX     float64 // Horizontal input delta applied this tick

	Anim gameconfig.StateID
}

// Rules are the constants Step runs with.
type Rules struct {
	gameconfig.Tuning

	SlashDuration    int
	ShurikenDuration int
}

// NewRules derives the slash and shuriken active windows from the length of
// their animations.
func NewRules(t gameconfig.Tuning, anims *gameconfig.AnimationSet) Rules {
	return Rules{
		Tuning:           t,
		SlashDuration:    anims.PlayDuration(gameconfig.Slash),
		ShurikenDuration: anims.PlayDuration(gameconfig.Shuriken),
	}
}

// DefaultRules uses the default tuning and the ninja animation table.
func DefaultRules() Rules {
	return NewRules(gameconfig.DefaultTuning(), &gameconfig.NinjaAnimations)
}

// NewState places the ninja at rest on the ground, facing right, all timers idle.
func NewState(r Rules) State {
	return State{
		Body: Body{
			X:           r.SpawnX,
			Y:           r.GroundLevel,
			FacingRight: true,
			OnGround:    true,
		},
		Anim: gameconfig.Idle,
	}
}

// Outcome reports what a tick resolved to.
type Outcome struct {
	State gameconfig.StateID

	DashStarted     bool
	SlashStarted    bool
	ShurikenStarted bool
}

// RestartCursor reports whether an action activated this tick, in which case
// the animation cursor must go back to the first frame.
func (o Outcome) RestartCursor() bool {
	return o.DashStarted || o.SlashStarted || o.ShurikenStarted
}

// Step runs one tick. The order of the stages is the priority order of the
// controller and must not change.
func Step(s State, in Input, r Rules) (State, Outcome) {
	var out Outcome

	// Dash trigger
	if in.Pressed(gameconfig.ActionDash) && s.Dash.Ready() {
		s.Dash.start(r.DashDuration, r.DashCooldown)
		out.DashStarted = true
	}

	// Horizontal movement is suppressed while dashing
	s.MoveX = 0
	if s.Dash.Active == 0 {
		if in.Pressed(gameconfig.ActionMoveLeft) {
			s.MoveX = -r.RunSpeed
			s.FacingRight = false
		} else if in.Pressed(gameconfig.ActionMoveRight) {
			s.MoveX = r.RunSpeed
			s.FacingRight = true
		}
	}

	// Jump, ground only
	if in.Pressed(gameconfig.ActionJump) && s.OnGround {
		s.SpeedY = r.JumpSpeed
		s.OnGround = false
	}

	// Climb overrides gravity and ignores the dash
	if in.Pressed(gameconfig.ActionClimbUp) && !in.horizontal() {
		s.Climbing = true
		s.SpeedY = 0
		s.Y -= r.ClimbSpeed
	} else {
		s.Climbing = false
	}

	if !s.Climbing && s.Dash.Active == 0 {
		s.Y, s.SpeedY = gamemath.ApplyGravity(s.Y, s.SpeedY, r.Gravity)
	}

	s.Y, s.SpeedY, s.OnGround = gamemath.ClampToGround(s.Y, s.SpeedY, r.GroundLevel)

	// The dash timer is consumed before moving, including on its first tick
	if s.Dash.tickActive() {
		s.X += gamemath.Facing(s.FacingRight) * r.DashSpeed
	}

	s.X += s.MoveX

	s.Attacking, out.SlashStarted = strike(&s.Slash, in.Pressed(gameconfig.ActionAttack), r.SlashDuration, r.SlashCooldown)
	s.Throwing, out.ShurikenStarted = strike(&s.Shuriken, in.Pressed(gameconfig.ActionThrow), r.ShurikenDuration, r.ShurikenCooldown)

	s.Anim = resolveState(&s)
	out.State = s.Anim

	s.Slash.decayCooldown()
	s.Shuriken.decayCooldown()
	s.Dash.decayCooldown()

	return s, out
}

// strike runs a slash-like action: keep going while active, otherwise start it
// when the button is held and the cooldown has run out.
func strike(t *ActionTimer, pressed bool, duration, cooldown int) (active, started bool) {
	if t.tickActive() {
		return true, false
	}
	if t.Cooldown == 0 && pressed {
		t.start(duration, cooldown)
		return true, true
	}
	return false, false
}

// resolveState picks the animation state, first match wins.
func resolveState(s *State) gameconfig.StateID {
	switch {
	case s.Attacking:
		return gameconfig.Slash
	case s.Throwing:
		return gameconfig.Shuriken
	case s.Dash.Active > 0:
		return gameconfig.Dash
	case s.Climbing:
		return gameconfig.Climb
	case !s.OnGround:
		if s.SpeedY < 0 {
			return gameconfig.Jump
		}
		return gameconfig.Fall
	case s.MoveX != 0:
		return gameconfig.Run
	default:
		return gameconfig.Idle
	}
}
