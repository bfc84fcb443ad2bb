package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightrain/shared/anim"
	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/ninja"
)

func namedTable() *anim.Table[string] {
	var t anim.Table[string]
	for id, def := range gameconfig.NinjaAnimations {
		frames := make([]string, len(def.Cells))
		for i := range frames {
			frames[i] = fmt.Sprintf("%s%d", gameconfig.StateID(id), i)
		}
		t[id] = anim.NewSequence(frames, def.Speed, func(s string) string { return s + "~" })
	}
	return &t
}

func TestStepNumbersTicks(t *testing.T) {
	s := New(ninja.DefaultRules(), namedTable())
	assert.Equal(t, uint64(1), s.Step(ninja.Input{}).Number)
	assert.Equal(t, uint64(2), s.Step(ninja.Input{}).Number)
}

func TestDashRestartsCursor(t *testing.T) {
	s := New(ninja.DefaultRules(), namedTable())

	// Run long enough to move the cursor off frame 0
	for s.Cursor().Index == 0 {
		s.Step(ninja.InputOf(gameconfig.ActionMoveRight))
	}

	tick := s.Step(ninja.InputOf(gameconfig.ActionDash))
	assert.Equal(t, gameconfig.Dash, tick.Outcome.State)
	assert.Equal(t, "dash0", tick.Frame.Image)
	assert.Equal(t, anim.Cursor{}, s.Cursor())
	assert.Equal(t, 11, tick.State.Dash.Active)
}

func TestSlashPlaysAndFreezes(t *testing.T) {
	s := New(ninja.DefaultRules(), namedTable())
	attack := ninja.InputOf(gameconfig.ActionAttack)

	var images []string
	for i := 0; i < 31; i++ {
		tick := s.Step(attack)
		require.Equal(t, gameconfig.Slash, tick.Frame.State, "tick %d", i+1)
		images = append(images, tick.Frame.Image)
	}
	assert.Equal(t, "slash0", images[0])
	assert.Equal(t, "slash1", images[10])
	assert.Equal(t, "slash2", images[20])
	for _, img := range images[20:] {
		assert.Equal(t, "slash2", img)
	}

	// Slash is over; cooldown keeps the held button from restarting it
	tick := s.Step(attack)
	assert.Equal(t, gameconfig.Idle, tick.Frame.State)
}

func TestFacingLeftMirrors(t *testing.T) {
	s := New(ninja.DefaultRules(), namedTable())
	tick := s.Step(ninja.InputOf(gameconfig.ActionMoveLeft))
	assert.True(t, tick.Frame.Mirrored)
	assert.Equal(t, "run0~", tick.Frame.Image)
}

func TestSetRulesAndReset(t *testing.T) {
	s := New(ninja.DefaultRules(), namedTable())
	s.Step(ninja.InputOf(gameconfig.ActionMoveRight))
	require.Equal(t, 647.0, s.State().X)

	tu := gameconfig.DefaultTuning()
	tu.RunSpeed = 10
	s.SetRules(ninja.NewRules(tu, &gameconfig.NinjaAnimations))
	s.Step(ninja.InputOf(gameconfig.ActionMoveRight))
	assert.Equal(t, 657.0, s.State().X)
	assert.Equal(t, 10.0, s.Rules().RunSpeed)

	s.Reset()
	assert.Equal(t, 640.0, s.State().X)
	assert.Equal(t, anim.Cursor{}, s.Cursor())
	assert.Equal(t, uint64(1), s.Step(ninja.Input{}).Number)
}
