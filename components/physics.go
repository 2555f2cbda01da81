package components

import (
	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
)

type PhysicsData struct {
	Velocity gamemath.Vec2
}

var Physics = donburi.NewComponentType[PhysicsData]()
