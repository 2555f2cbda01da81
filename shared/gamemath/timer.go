package gamemath

// Advance counts a timer down by dt, flooring at zero. All cooldowns and
// action windows in the game tick through this single rule.
func Advance(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
