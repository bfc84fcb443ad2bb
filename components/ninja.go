package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/nightrain/shared/sim"
)

// NinjaData owns the simulation of the controllable ninja and the result of
// its latest tick.
type NinjaData struct {
	Sim  *sim.Simulation[*ebiten.Image]
	Last sim.Tick[*ebiten.Image]
	// Body box touches a solid object in the collision space
	OnFloor bool
}

var Ninja = donburi.NewComponentType[NinjaData]()
