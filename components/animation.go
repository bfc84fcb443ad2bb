package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/nightrain/shared/anim"
)

type AnimationData struct {
	Table       *anim.Table[*ebiten.Image] // Pre-cut frames and their mirrored copies
	Current     anim.Frame[*ebiten.Image]
	FrameWidth  int
	FrameHeight int
}

var Animation = donburi.NewComponentType[AnimationData]()
