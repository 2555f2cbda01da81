package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/archetypes"
	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
)

// CreateEncounter creates the group-spawn bookkeeping entity and the initial
// enemy batch at random positions inside the spawn margin.
func CreateEncounter(ecs *ecs.ECS) *donburi.Entry {
	encounter := archetypes.Encounter.Spawn(ecs)
	components.Encounter.SetValue(encounter, components.EncounterData{})

	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return encounter
	}
	rng := components.Clock.Get(clockEntry).RNG

	margin := cfg.Encounter.SpawnMargin
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	for i := 0; i < cfg.Encounter.EnemyCount; i++ {
		x := margin + rng.Float64()*(w-2*margin)
		y := margin + rng.Float64()*(h-2*margin)
		CreateEnemy(ecs, x, y)
	}

	return encounter
}
