package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a collision box in the resolv space. Offset places the box
// inside the sprite cell it belongs to.
type ObjectData struct {
	*resolv.Object
	OffsetX, OffsetY float64
}

// Follow moves the box so it tracks a sprite drawn at (x, y).
func (o *ObjectData) Follow(x, y float64) {
	o.X = x + o.OffsetX
	o.Y = y + o.OffsetY
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
