package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
)

// ObjectData wraps the resolv collision object for an entity. Entities are
// circles; the object's AABB bounds the circle and Radius holds the exact
// collision radius used by the narrow-phase test.
type ObjectData struct {
	*resolv.Object
	Radius float64
}

// Center returns the circle center. The resolv object stores the top-left
// corner of the bounding box.
func (o *ObjectData) Center() gamemath.Vec2 {
	return gamemath.Vec2{X: o.X + o.Radius, Y: o.Y + o.Radius}
}

// SetCenter moves the bounding box so the circle is centered at p.
func (o *ObjectData) SetCenter(p gamemath.Vec2) {
	o.X = p.X - o.Radius
	o.Y = p.Y - o.Radius
}

var Object = donburi.NewComponentType[ObjectData]()
