package ninja

// ActionTimer tracks one action's active window and its retrigger cooldown,
// both counted in ticks.
type ActionTimer struct {
	Active   int
	Cooldown int
}

// Ready reports whether the action may start this tick.
func (a ActionTimer) Ready() bool {
	return a.Active == 0 && a.Cooldown == 0
}

// start arms both timers.
func (a *ActionTimer) start(duration, cooldown int) {
	a.Active = duration
	a.Cooldown = cooldown
}

// tickActive consumes one tick of the active window and reports whether the
// action was running.
func (a *ActionTimer) tickActive() bool {
	if a.Active > 0 {
		a.Active--
		return true
	}
	return false
}

func (a *ActionTimer) decayCooldown() {
	if a.Cooldown > 0 {
		a.Cooldown--
	}
}
