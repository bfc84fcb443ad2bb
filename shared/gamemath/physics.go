package gamemath

// Facing returns 1 when facing right and -1 when facing left.
func Facing(facingRight bool) float64 {
	if facingRight {
		return 1
	}
	return -1
}

// ApplyGravity adds one tick of gravity to the vertical speed and moves y by
// the new speed. Positive y points down.
func ApplyGravity(y, speedY, gravity float64) (newY, newSpeedY float64) {
	speedY += gravity
	return y + speedY, speedY
}

// ClampToGround keeps y at or above the ground line (y <= groundY). Landing
// zeroes the vertical speed.
func ClampToGround(y, speedY, groundY float64) (newY, newSpeedY float64, onGround bool) {
	if y >= groundY {
		return groundY, 0, true
	}
	return y, speedY, false
}
