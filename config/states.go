package config

import "github.com/yohamta/donburi/ecs"

// StateID identifies an entity behavior state
type StateID int

const (
	StateNone StateID = iota

	// Player states
	Idle
	Moving
	Rolling
	AttackLight
	AttackHeavy

	// Enemy states
	StateWander
	StateChase
	StateAttack
	StateDead
)

// Renderer layer used for all entities
const Default = ecs.LayerDefault

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Rolling:
		return "rolling"
	case AttackLight:
		return "attack_light"
	case AttackHeavy:
		return "attack_heavy"
	case StateWander:
		return "wander"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateDead:
		return "dead"
	default:
		return "none"
	}
}
