package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/archetypes"
	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

// UpdateCombatHitboxes drives the player attack hitbox: one hitbox entity
// per swing, following the facing direction, hitting each enemy at most once.
func UpdateCombatHitboxes(e *ecs.ECS) {
	createPlayerHitboxes(e)
	updateHitboxes(e)
	cleanupHitboxes(e)
}

func createPlayerHitboxes(e *ecs.ECS) {
	components.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		if playerEntry.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(playerEntry)
		if player.AttackTimer <= 0 || player.ActiveHitbox != nil {
			return
		}
		player.ActiveHitbox = createHitbox(e, playerEntry)
	})
}

func createHitbox(e *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(e)

	r := cfg.Combat.HitboxRadius
	center := hitboxCenter(owner)
	obj := resolv.NewObject(center.X-r, center.Y-r, 2*r, 2*r)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.AddTags(tags.ResolvHitbox)
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj, Radius: r})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity: owner,
		Damage:      cfg.Combat.HitDamage,
		Knockback:   cfg.Combat.Knockback,
		HitEntities: make(map[*donburi.Entry]bool),
	})

	return hitbox
}

// hitboxCenter places the swing in front of the owner along its facing.
func hitboxCenter(owner *donburi.Entry) gamemath.Vec2 {
	player := components.Player.Get(owner)
	obj := components.Object.Get(owner)
	offset := obj.Radius + cfg.Combat.HitboxReach
	return obj.Center().Add(player.Facing.Normalized().Scale(offset))
}

func updateHitboxes(e *ecs.ECS) {
	tags.Hitbox.Each(e.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		obj := components.Object.Get(hitboxEntry)

		owner := hitbox.OwnerEntity
		if owner == nil || !owner.Valid() {
			return
		}

		// Follow the owner for the duration of the swing.
		obj.SetCenter(hitboxCenter(owner))
		obj.Update()

		checkHitboxCollisions(hitbox, obj)
	})
}

// checkHitboxCollisions resolves hits: broad-phase via the resolv space,
// then the exact circle test so tangent contacts still land.
func checkHitboxCollisions(hitbox *components.HitboxData, hitboxObj *components.ObjectData) {
	check := hitboxObj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	for _, obj := range check.Objects {
		targetEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || !shouldHitTarget(hitbox, targetEntry) {
			continue
		}

		target := components.Object.Get(targetEntry)
		if !gamemath.CirclesOverlap(hitboxObj.Center(), hitboxObj.Radius, target.Center(), target.Radius) {
			continue
		}

		hitbox.HitEntities[targetEntry] = true
		donburi.Add(targetEntry, components.DamageEvent, &components.DamageEventData{
			Amount:    hitbox.Damage,
			Knockback: hitbox.Knockback,
			Source:    components.Object.Get(hitbox.OwnerEntity).Center(),
		})
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry) bool {
	if hitbox.OwnerEntity == target {
		return false
	}
	if hitbox.HitEntities[target] {
		return false
	}
	// Downed enemies are not valid targets.
	return components.Health.Get(target).Alive
}

// cleanupHitboxes removes hitboxes whose swing window has closed.
func cleanupHitboxes(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Hitbox.Each(e.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		owner := hitbox.OwnerEntity

		expired := owner == nil || !owner.Valid() || owner.HasComponent(components.Death)
		if !expired {
			expired = components.Player.Get(owner).AttackTimer <= 0
		}
		if !expired {
			return
		}

		toRemove = append(toRemove, hitboxEntry)
		if owner != nil && owner.Valid() && !owner.HasComponent(components.Death) {
			player := components.Player.Get(owner)
			if player.ActiveHitbox == hitboxEntry {
				player.ActiveHitbox = nil
			}
		}
	})

	for _, hitboxEntry := range toRemove {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			obj := components.Object.Get(hitboxEntry)
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		e.World.Remove(hitboxEntry.Entity())
	}
}

// DrawHitboxes outlines active swings. The filled overlay is debug-only.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	tags.Hitbox.Each(e.World, func(hitboxEntry *donburi.Entry) {
		obj := components.Object.Get(hitboxEntry)
		center := obj.Center()

		vector.StrokeCircle(screen,
			float32(center.X), float32(center.Y), float32(obj.Radius),
			2, cfg.HitboxGold, true)

		if cfg.Debug.ShowHitboxes {
			fill := cfg.HitboxGold
			fill.A = 60
			vector.DrawFilledCircle(screen,
				float32(center.X), float32(center.Y), float32(obj.Radius),
				fill, true)
		}
	})
}
