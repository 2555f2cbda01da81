package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
)

// UpdateDeaths counts down death sequences and removes finished entities.
// Only the player carries one; downed enemies stay in the world as corpses
// until their respawn timer revives them.
func UpdateDeaths(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}

	var toRemove []*donburi.Entry
	components.Death.Each(e.World, func(entry *donburi.Entry) {
		death := components.Death.Get(entry)
		death.Timer -= clock.DT
		if death.Timer <= 0 {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			if entry.HasComponent(components.Object) {
				obj := components.Object.Get(entry)
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		e.World.Remove(entry.Entity())
	}
}
