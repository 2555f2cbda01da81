package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ClockData is the singleton time and randomness source for a world. Systems
// read DT instead of assuming a tick rate, and all random decisions flow
// through RNG so a seeded run replays identically.
type ClockData struct {
	DT  float64
	RNG *rand.Rand
}

var Clock = donburi.NewComponentType[ClockData]()
