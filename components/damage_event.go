package components

import (
	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
)

// DamageEventData queues a pending hit on an entity. UpdateCombat consumes
// the event, applies the damage rule and removes the component.
type DamageEventData struct {
	Amount int

	// Knockback push away from Source, zero for plain damage. The push is
	// skipped when the source and target are coincident.
	Knockback float64
	Source    gamemath.Vec2
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
