package anim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightrain/shared/gameconfig"
)

func mirrorName(s string) string { return "mirror:" + s }

// testTable names every frame "<state><index>" and uses the ninja speeds.
func testTable() *Table[string] {
	var t Table[string]
	for id, def := range gameconfig.NinjaAnimations {
		state := gameconfig.StateID(id)
		frames := make([]string, len(def.Cells))
		for i := range frames {
			frames[i] = fmt.Sprintf("%s%d", state, i)
		}
		t[id] = NewSequence(frames, def.Speed, mirrorName)
	}
	return &t
}

// tick runs one tick the way the simulation does.
func tick(p *Player[string], state gameconfig.StateID, facingRight bool) Frame[string] {
	p.BeginTick()
	return p.Advance(state, facingRight)
}

func TestNewSequenceMirrors(t *testing.T) {
	seq := NewSequence([]string{"a", "b"}, 3, mirrorName)
	assert.Equal(t, []string{"a", "b"}, seq.Frames)
	assert.Equal(t, []string{"mirror:a", "mirror:b"}, seq.Mirrored)

	plain := NewSequence([]string{"a"}, 3, nil)
	assert.Equal(t, []string{"a"}, plain.Mirrored)
}

func TestLoopingAdvance(t *testing.T) {
	var table Table[string]
	table[gameconfig.Idle] = NewSequence([]string{"i0", "i1"}, 2, nil)
	p := NewPlayer(&table)

	var got []int
	for i := 0; i < 6; i++ {
		got = append(got, tick(p, gameconfig.Idle, true).Index)
	}
	assert.Equal(t, []int{0, 1, 1, 0, 0, 1}, got)
}

func TestFractionalSpeed(t *testing.T) {
	p := NewPlayer(testTable())
	for i := 1; i <= 9; i++ {
		f := tick(p, gameconfig.Climb, true)
		require.Equal(t, 0, f.Index, "tick %d", i)
	}
	// 10 >= 9.3
	f := tick(p, gameconfig.Climb, true)
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, 0, p.Cursor().Timer)
}

func TestFreezeOnLastFrame(t *testing.T) {
	p := NewPlayer(testTable())

	// Activation tick: the timer counted by BeginTick is cleared by the restart
	p.BeginTick()
	p.Restart()
	f := p.Advance(gameconfig.Slash, true)
	require.Equal(t, 0, f.Index)
	assert.False(t, f.Frozen)

	var last Frame[string]
	for i := 2; i <= 60; i++ {
		f = tick(p, gameconfig.Slash, true)
		require.LessOrEqual(t, f.Index, 2)
		if last.Frozen {
			assert.Equal(t, last.Image, f.Image, "image changed after freezing at tick %d", i)
		}
		last = f
	}
	assert.True(t, last.Frozen)
	assert.Equal(t, 2, last.Index)
	assert.Equal(t, "slash2", last.Image)
	// The timer keeps counting while frozen
	assert.Greater(t, p.Cursor().Timer, 10)
}

func TestSlashFrameTiming(t *testing.T) {
	p := NewPlayer(testTable())
	p.BeginTick()
	p.Restart()
	p.Advance(gameconfig.Slash, true)

	var indexes []int
	for i := 0; i < 21; i++ {
		indexes = append(indexes, tick(p, gameconfig.Slash, true).Index)
	}
	// Frames change on the 10th and 20th tick after activation
	assert.Equal(t, 0, indexes[8])
	assert.Equal(t, 1, indexes[9])
	assert.Equal(t, 1, indexes[18])
	assert.Equal(t, 2, indexes[19])
	assert.Equal(t, 2, indexes[20])
}

func TestCursorContinuity(t *testing.T) {
	p := NewPlayer(testTable())

	// Idle flips to its second frame after 22 ticks
	var f Frame[string]
	for i := 0; i < 22; i++ {
		f = tick(p, gameconfig.Idle, true)
	}
	require.Equal(t, 1, f.Index)

	// Switching to run keeps the index
	f = tick(p, gameconfig.Run, true)
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, "run1", f.Image)

	// And back to idle again
	f = tick(p, gameconfig.Idle, true)
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, "idle1", f.Image)
}

func TestIndexPastEndWraps(t *testing.T) {
	p := NewPlayer(testTable())
	for p.Cursor().Index != 4 {
		tick(p, gameconfig.Run, true)
	}

	// Looping state with fewer frames starts over
	f := tick(p, gameconfig.Idle, true)
	assert.Equal(t, 0, f.Index)
}

func TestIndexPastEndClampsOneShot(t *testing.T) {
	p := NewPlayer(testTable())
	for p.Cursor().Index != 4 {
		tick(p, gameconfig.Run, true)
	}

	// One-shot state with fewer frames holds its last one
	f := tick(p, gameconfig.Shuriken, true)
	assert.Equal(t, 1, f.Index)
	assert.True(t, f.Frozen)
	assert.Equal(t, "shuriken1", f.Image)
}

func TestMirroring(t *testing.T) {
	right := NewPlayer(testTable())
	left := NewPlayer(testTable())

	for i := 0; i < 30; i++ {
		fr := tick(right, gameconfig.Run, true)
		fl := tick(left, gameconfig.Run, false)
		require.Equal(t, fr.Index, fl.Index)
		assert.False(t, fr.Mirrored)
		assert.True(t, fl.Mirrored)
		assert.Equal(t, mirrorName(fr.Image), fl.Image)
	}
}

func TestUnknownStateFallsBackToIdle(t *testing.T) {
	p := NewPlayer(testTable())
	f := tick(p, gameconfig.StateID(99), true)
	assert.Equal(t, gameconfig.Idle, f.State)
	assert.Equal(t, "idle0", f.Image)

	f = tick(p, gameconfig.StateNone, false)
	assert.Equal(t, "mirror:idle0", f.Image)

	// Idle speed applies: 22 ticks to the next frame
	for i := 3; i <= 22; i++ {
		f = tick(p, gameconfig.StateID(99), true)
	}
	assert.Equal(t, 1, f.Index)
}

func TestEmptySequenceFallsBackToFirstIdleFrame(t *testing.T) {
	table := testTable()
	table[gameconfig.Dash] = Sequence[string]{Speed: 6}
	p := NewPlayer(table)

	tick(p, gameconfig.Run, true)
	before := p.Cursor()

	f := tick(p, gameconfig.Dash, false)
	assert.Equal(t, "idle0", f.Image)
	assert.Equal(t, gameconfig.Idle, f.State)
	assert.Equal(t, before.Index, p.Cursor().Index)
}

func TestSetTable(t *testing.T) {
	p := NewPlayer(testTable())
	var other Table[string]
	other[gameconfig.Idle] = NewSequence([]string{"new"}, 1, nil)
	p.SetTable(&other)
	assert.Equal(t, "new", tick(p, gameconfig.Idle, true).Image)
}
