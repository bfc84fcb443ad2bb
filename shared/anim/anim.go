// Package anim plays the ninja's per-state frame sequences. It is generic over
// the image type so the game client can use *ebiten.Image while tools and tests
// use image.Image.
package anim

import "github.com/automoto/nightrain/shared/gameconfig"

// Sequence is the ordered frames of one state plus their mirrored copies.
type Sequence[F any] struct {
	Frames   []F
	Mirrored []F
	Speed    float64 // Ticks per frame; may be fractional
}

// NewSequence builds a sequence and its horizontally mirrored frames. A nil
// mirror reuses the source frames.
func NewSequence[F any](frames []F, speed float64, mirror func(F) F) Sequence[F] {
	mirrored := make([]F, len(frames))
	for i, f := range frames {
		if mirror != nil {
			mirrored[i] = mirror(f)
		} else {
			mirrored[i] = f
		}
	}
	return Sequence[F]{Frames: frames, Mirrored: mirrored, Speed: speed}
}

// Table maps every state to its sequence.
type Table[F any] [gameconfig.StateCount]Sequence[F]

// Lookup returns the sequence for a state, falling back to idle for anything
// outside the eight known states.
func (t *Table[F]) Lookup(state gameconfig.StateID) (Sequence[F], gameconfig.StateID) {
	if !state.Valid() {
		return t[gameconfig.Idle], gameconfig.Idle
	}
	return t[state], state
}

// Cursor is the playback position shared by all states.
type Cursor struct {
	Index int
	Timer int // Ticks since the last frame change
}

// Frame is what the player hands to the renderer.
type Frame[F any] struct {
	Image    F
	State    gameconfig.StateID
	Index    int
	Mirrored bool
	Frozen   bool // One-shot state holding its final frame
}

// Player owns the cursor of one character.
type Player[F any] struct {
	table  *Table[F]
	cursor Cursor
}

func NewPlayer[F any](table *Table[F]) *Player[F] {
	return &Player[F]{table: table}
}

// BeginTick counts one tick. It runs before the state for the tick is
// resolved, so a restart in the same tick clears it again.
func (p *Player[F]) BeginTick() {
	p.cursor.Timer++
}

// Restart rewinds to the first frame. Only action activations call this;
// ordinary state changes keep the cursor for visual continuity.
func (p *Player[F]) Restart() {
	p.cursor = Cursor{}
}

func (p *Player[F]) Cursor() Cursor {
	return p.cursor
}

// SetTable swaps the frame table, e.g. after the sheet was reloaded.
func (p *Player[F]) SetTable(table *Table[F]) {
	p.table = table
}

// Advance moves the cursor for the resolved state and returns the frame to show.
func (p *Player[F]) Advance(state gameconfig.StateID, facingRight bool) Frame[F] {
	seq, state := p.table.Lookup(state)
	n := len(seq.Frames)
	if n == 0 {
		return p.fallback()
	}

	oneShot := gameconfig.OneShot(state)
	if p.cursor.Index >= n {
		if oneShot {
			p.cursor.Index = n - 1
		} else {
			p.cursor.Index = 0
		}
	}

	frozen := oneShot && p.cursor.Index >= n-1
	if float64(p.cursor.Timer) >= seq.Speed && !frozen {
		p.cursor.Index = (p.cursor.Index + 1) % n
		p.cursor.Timer = 0
	}

	f := Frame[F]{
		Image:  seq.Frames[p.cursor.Index],
		State:  state,
		Index:  p.cursor.Index,
		Frozen: oneShot && p.cursor.Index >= n-1,
	}
	if !facingRight && p.cursor.Index < len(seq.Mirrored) {
		f.Image = seq.Mirrored[p.cursor.Index]
		f.Mirrored = true
	}
	return f
}

// fallback is the first idle frame, shown when a state has no frames at all.
func (p *Player[F]) fallback() Frame[F] {
	f := Frame[F]{State: gameconfig.Idle}
	if idle := p.table[gameconfig.Idle].Frames; len(idle) > 0 {
		f.Image = idle[0]
	}
	return f
}
