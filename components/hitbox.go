package components

import "github.com/yohamta/donburi"

type HitboxData struct {
	OwnerEntity *donburi.Entry          // The entity that created this hitbox
	Damage      int                     // Damage this hitbox deals
	Knockback   float64                 // Positional push away from the owner
	HitEntities map[*donburi.Entry]bool // Entities already hit (prevent multiple hits per swing)
}

var Hitbox = donburi.NewComponentType[HitboxData]()
