package config

import "github.com/automoto/nightrain/shared/gameconfig"

// Same references as the headless packages, no copy.
var (
	NinjaSheet      = gameconfig.NinjaSheet
	NinjaAnimations = &gameconfig.NinjaAnimations
)
