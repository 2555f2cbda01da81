package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Speed float64

	// Combat
	AttackCooldown float64

	// Respawn countdown while dead. Zero means the timer has not been
	// armed yet; it is set to a random duration on the first dead tick.
	RespawnTimer float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
