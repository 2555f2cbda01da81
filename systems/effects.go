package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
)

// UpdateEffects decays hit flashes.
func UpdateEffects(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		flash.Duration = gamemath.Advance(flash.Duration, clock.DT)
	})
}
