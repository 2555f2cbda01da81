package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
	"github.com/Arch2jz/Elden-ring-parody/tags"
	"github.com/Arch2jz/Elden-ring-parody/telemetry"
)

// ApplyDamage is the single damage rule shared by every entity. Damage is
// rejected while the target is invulnerable or already down; a successful
// hit opens the post-hit grace window and downs the target at zero health.
func ApplyDamage(hp *components.HealthData, amount int) bool {
	if hp.InvulnTimer > 0 || !hp.Alive {
		return false
	}
	hp.Current -= amount
	hp.InvulnTimer = cfg.Combat.HitInvuln
	if hp.Current <= 0 {
		hp.Current = 0
		hp.Alive = false
	}
	return true
}

// UpdateCombat consumes queued damage events: applies the damage rule,
// pushes the target away from the source, and starts the player death
// sequence when the killing blow lands.
func UpdateCombat(e *ecs.ECS) {
	var pending []*donburi.Entry
	components.DamageEvent.Each(e.World, func(entry *donburi.Entry) {
		pending = append(pending, entry)
	})

	for _, entry := range pending {
		dmg := components.DamageEvent.Get(entry)
		hp := components.Health.Get(entry)

		if ApplyDamage(hp, dmg.Amount) {
			applyKnockback(entry, dmg)
			triggerDamageFlash(entry)
			emitTelemetry(e, telemetry.Event{Kind: "damage", F: float64(dmg.Amount)})

			if !hp.Alive {
				handleKill(e, entry)
			}
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}
}

// applyKnockback shifts the target away from the damage source. No-op for
// plain damage events and when source and target are coincident.
func applyKnockback(entry *donburi.Entry, dmg *components.DamageEventData) {
	if dmg.Knockback == 0 || !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	away := obj.Center().Sub(dmg.Source)
	if away.LengthSq() == 0 {
		return
	}
	obj.SetCenter(obj.Center().Add(away.Normalized().Scale(dmg.Knockback)))
}

func triggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.Get(entry).Duration = cfg.Combat.DamageFlash
}

func handleKill(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(tags.Enemy) {
		emitTelemetry(e, telemetry.Event{Kind: "kill", I: 1})
		return
	}

	// Killing blow on the player: freeze and start the death sequence.
	if entry.HasComponent(components.Player) && !entry.HasComponent(components.Death) {
		if entry.HasComponent(components.Physics) {
			components.Physics.Get(entry).Velocity = gamemath.Vec2{}
		}
		donburi.Add(entry, components.Death, &components.DeathData{
			Timer: cfg.GameOver.DeathDelay,
		})
	}
}
