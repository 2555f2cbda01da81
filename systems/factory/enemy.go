package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/archetypes"
	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

// CreateEnemy spawns one enemy centered at (x, y) and registers its
// collision object in the space.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	r := cfg.Enemy.Radius
	obj := resolv.NewObject(x-r, y-r, 2*r, 2*r)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj, Radius: r})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed: cfg.Enemy.MoveSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
		Alive:   true,
	})
	components.State.SetValue(enemy, components.StateData{
		Current:  cfg.StateWander,
		Previous: cfg.StateNone,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return enemy
}
