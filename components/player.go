package components

import (
	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
)

type PlayerData struct {
	Facing gamemath.Vec2 // last nonzero move direction, unit length

	// Attack action. AttackTimer is the remaining active window of the
	// current swing; AttackKind records which attack opened it.
	AttackTimer    float64
	AttackCooldown float64
	AttackKind     config.StateID

	// Roll action
	IsRolling    bool
	RollTimer    float64
	RollCooldown float64

	ActiveHitbox *donburi.Entry // hitbox entity for the current swing, nil between swings
}

var Player = donburi.NewComponentType[PlayerData]()
