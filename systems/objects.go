package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
)

// UpdateObjects re-registers every collision object in the space after the
// movement systems have run, so the hitbox broad-phase sees fresh positions.
func UpdateObjects(e *ecs.ECS) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object != nil {
			obj.Update()
		}
	})
}
