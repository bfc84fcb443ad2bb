package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GhostData is a fading after-image left behind by a dash.
type GhostData struct {
	Image *ebiten.Image
	X, Y  float64
	Alpha float32
}

var Ghost = donburi.NewComponentType[GhostData]()

var Tween = donburi.NewComponentType[gween.Tween]()
