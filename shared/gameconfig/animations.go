package gameconfig

import "math"

// Cell addresses one tile of the sprite sheet (0-based).
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// AnimationDef lists the sheet cells of a state in playback order and how many
// ticks each frame is held. Speed may be fractional; it is compared against an
// integer tick counter.
type AnimationDef struct {
	Cells []Cell  `yaml:"cells"`
	Speed float64 `yaml:"speed"`
}

// SheetLayout describes the grid of the ninja sprite sheet.
type SheetLayout struct {
	TileWidth  int
	TileHeight int
	Cols       int
	Rows       int
}

// NinjaSheet is the 4x5 grid of 320x320 cells the ninja is drawn on.
var NinjaSheet = SheetLayout{
	TileWidth:  320,
	TileHeight: 320,
	Cols:       4,
	Rows:       5,
}

// AnimationSet maps every state to its definition.
type AnimationSet [StateCount]AnimationDef

// NinjaAnimations is the frame table of the ninja. Higher speed = slower.
var NinjaAnimations = AnimationSet{
	Idle:     {Cells: []Cell{{0, 0}, {0, 1}}, Speed: 22},
	Run:      {Cells: []Cell{{0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3}}, Speed: 5},
	Jump:     {Cells: []Cell{{2, 0}}, Speed: 6},
	Fall:     {Cells: []Cell{{2, 1}}, Speed: 6},
	Climb:    {Cells: []Cell{{2, 2}, {2, 3}, {3, 0}, {3, 1}}, Speed: 9.3},
	Dash:     {Cells: []Cell{{3, 2}}, Speed: 6},
	Slash:    {Cells: []Cell{{3, 3}, {4, 0}, {4, 1}}, Speed: 10},
	Shuriken: {Cells: []Cell{{4, 2}, {4, 3}}, Speed: 10},
}

// PlayDuration is the number of ticks a state needs to show each of its frames
// once: frame count times speed, rounded up for fractional speeds.
func (s *AnimationSet) PlayDuration(state StateID) int {
	if !state.Valid() {
		return 0
	}
	def := s[state]
	return int(math.Ceil(float64(len(def.Cells)) * def.Speed))
}
