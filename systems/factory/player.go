package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/archetypes"
	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

// CreatePlayer spawns the player centered at (x, y) and registers its
// collision object in the space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := cfg.Player.Radius
	obj := resolv.NewObject(x-r, y-r, 2*r, 2*r)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj, Radius: r})

	components.Player.SetValue(player, components.PlayerData{
		Facing: gamemath.Vec2{X: 1, Y: 0},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
		Alive:   true,
	})
	components.Stamina.SetValue(player, components.StaminaData{
		Current: cfg.Player.StaminaMax,
		Max:     cfg.Player.StaminaMax,
		Regen:   cfg.Player.StaminaRegen,
	})
	components.State.SetValue(player, components.StateData{
		Current:  cfg.Idle,
		Previous: cfg.StateNone,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
