// Package leveldata parses the dojo levels. It has no dependencies on
// ebitengine, donburi or resolv, so the headless tools can load levels too.
package leveldata

// Level is the playable area of a TMX map.
type Level struct {
	Name   string
	Width  int // pixels
	Height int // pixels
	Floors []Rect
	Spawn  Point
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) containsX(x float64) bool {
	return x >= r.X && x < r.X+r.W
}

type Point struct {
	X, Y float64
}

// Floor returns the floor below the spawn point, or the first floor when the
// spawn hangs over a gap.
func (l *Level) Floor() Rect {
	for _, f := range l.Floors {
		if f.containsX(l.Spawn.X) {
			return f
		}
	}
	return l.Floors[0]
}

// GroundLevel is the Y a sprite of the given height is drawn at so its bottom
// edge rests on the floor.
func (l *Level) GroundLevel(spriteHeight float64) float64 {
	return l.Floor().Y - spriteHeight
}
