package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

// UpdateEncounter runs the group respawn rule: once every enemy is down,
// each tick has a small chance of bringing the whole batch back at fresh
// positions. Runs last in the frame.
func UpdateEncounter(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}
	encounterEntry, ok := components.Encounter.First(e.World)
	if !ok {
		return
	}

	if countAliveEnemies(e) > 0 {
		return
	}
	if clock.RNG.Float64() >= cfg.Encounter.GroupRespawnChance {
		return
	}

	respawnGroup(e, clock)

	encounter := components.Encounter.Get(encounterEntry)
	encounter.Waves++
	logrus.WithField("wave", encounter.Waves).Debug("enemy group respawned")
}

func countAliveEnemies(e *ecs.ECS) int {
	alive := 0
	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		if components.Health.Get(enemyEntry).Alive {
			alive++
		}
	})
	return alive
}

// respawnGroup resets every enemy at a fresh random position inside the
// respawn margin, at full health with clear timers.
func respawnGroup(e *ecs.ECS, clock *components.ClockData) {
	margin := cfg.Encounter.RespawnMargin
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		enemy := components.Enemy.Get(enemyEntry)
		hp := components.Health.Get(enemyEntry)
		physics := components.Physics.Get(enemyEntry)
		obj := components.Object.Get(enemyEntry)
		state := components.State.Get(enemyEntry)

		obj.SetCenter(gamemath.Vec2{
			X: margin + clock.RNG.Float64()*(w-2*margin),
			Y: margin + clock.RNG.Float64()*(h-2*margin),
		})
		obj.Update()

		hp.Alive = true
		hp.Current = hp.Max
		hp.InvulnTimer = 0
		enemy.AttackCooldown = 0
		enemy.RespawnTimer = 0
		physics.Velocity = gamemath.Vec2{}
		state.Transition(cfg.StateWander)
	})
}
