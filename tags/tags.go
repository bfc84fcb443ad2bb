package tags

import "github.com/yohamta/donburi"

var (
	Ninja  = donburi.NewTag().SetName("Ninja")
	Ground = donburi.NewTag().SetName("Ground")
	Ghost  = donburi.NewTag().SetName("Ghost")
)

// Resolv tags for collision objects
const (
	ResolvSolid = "solid"
	ResolvNinja = "Ninja"
)
