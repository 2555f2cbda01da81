package factory

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/archetypes"
	"github.com/Arch2jz/Elden-ring-parody/components"
)

// CreateClock creates the singleton time source. The fixed dt and the seeded
// RNG are the only nondeterminism inputs the simulation has.
func CreateClock(ecs *ecs.ECS, dt float64, rng *rand.Rand) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		DT:  dt,
		RNG: rng,
	})
	return clock
}
