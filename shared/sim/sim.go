// Package sim ties the resolver and the animation player into one explicit
// simulation object per character.
package sim

import (
	"github.com/automoto/nightrain/shared/anim"
	"github.com/automoto/nightrain/shared/ninja"
)

// Tick is the result of one simulation step.
type Tick[F any] struct {
	Number  uint64
	State   ninja.State
	Outcome ninja.Outcome
	Frame   anim.Frame[F]
}

// Simulation owns one ninja and its animation cursor.
type Simulation[F any] struct {
	rules  ninja.Rules
	state  ninja.State
	player *anim.Player[F]
	ticks  uint64
}

// New spawns a ninja at rest using rules and the given frame table.
func New[F any](rules ninja.Rules, table *anim.Table[F]) *Simulation[F] {
	return &Simulation[F]{
		rules:  rules,
		state:  ninja.NewState(rules),
		player: anim.NewPlayer(table),
	}
}

// Step runs one full tick: count the animation timer, resolve physics and
// actions, rewind the cursor if an action started, then pick the frame.
func (s *Simulation[F]) Step(in ninja.Input) Tick[F] {
	s.player.BeginTick()

	next, out := ninja.Step(s.state, in, s.rules)
	s.state = next
	if out.RestartCursor() {
		s.player.Restart()
	}

	frame := s.player.Advance(out.State, next.FacingRight)
	s.ticks++

	return Tick[F]{
		Number:  s.ticks,
		State:   next,
		Outcome: out,
		Frame:   frame,
	}
}

func (s *Simulation[F]) State() ninja.State {
	return s.state
}

func (s *Simulation[F]) Rules() ninja.Rules {
	return s.rules
}

// SetRules applies new constants from the next tick on. The ninja keeps its
// current position and timers.
func (s *Simulation[F]) SetRules(r ninja.Rules) {
	s.rules = r
}

// SetTable swaps the frame table without touching the cursor.
func (s *Simulation[F]) SetTable(table *anim.Table[F]) {
	s.player.SetTable(table)
}

// Cursor exposes the animation cursor for overlays.
func (s *Simulation[F]) Cursor() anim.Cursor {
	return s.player.Cursor()
}

// Reset puts the ninja back at its spawn point with idle timers.
func (s *Simulation[F]) Reset() {
	s.state = ninja.NewState(s.rules)
	s.player.Restart()
	s.ticks = 0
}
