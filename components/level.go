package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightrain/shared/leveldata"
)

type LevelData struct {
	Level *leveldata.Level
	// Y of the floor line under the ninja
	FloorY float64
}

var Level = donburi.NewComponentType[LevelData]()
