package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

// UpdateEnemies runs the per-enemy AI. Runs after UpdatePlayer so decisions
// use the player's position and invulnerability for this frame.
func UpdateEnemies(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}

	// Player snapshot for AI decisions.
	var playerObj *components.ObjectData
	var playerHP *components.HealthData
	if playerEntry, ok := components.Player.First(e.World); ok {
		playerObj = components.Object.Get(playerEntry)
		playerHP = components.Health.Get(playerEntry)
	}

	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		updateEnemyAI(e, enemyEntry, playerObj, playerHP, clock)
	})
}

func updateEnemyAI(e *ecs.ECS, enemyEntry *donburi.Entry, playerObj *components.ObjectData, playerHP *components.HealthData, clock *components.ClockData) {
	dt := clock.DT
	enemy := components.Enemy.Get(enemyEntry)
	hp := components.Health.Get(enemyEntry)
	physics := components.Physics.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)
	state := components.State.Get(enemyEntry)
	state.StateTimer += dt

	hp.InvulnTimer = gamemath.Advance(hp.InvulnTimer, dt)

	if !hp.Alive {
		updateDeadEnemy(enemy, hp, state, clock)
		return
	}

	if playerObj == nil {
		return
	}

	toPlayer := playerObj.Center().Sub(obj.Center())
	dist := toPlayer.Length()

	if dist < cfg.Enemy.Perception {
		meleeRange := obj.Radius + playerObj.Radius + cfg.Enemy.MeleeBuffer
		if dist > meleeRange {
			handleChase(enemy, physics, obj, state, toPlayer, dt)
		} else {
			handleMeleeAttack(enemyEntry, enemy, obj, state, playerHP, playerObj)
		}
		// The attack cooldown only ticks while the player is in perception.
		enemy.AttackCooldown = gamemath.Advance(enemy.AttackCooldown, dt)
	} else {
		handleWander(enemy, physics, obj, state, clock, dt)
	}

	clampToArena(obj)
}

// updateDeadEnemy arms the respawn timer on the first dead tick, then counts
// it down and revives the enemy in place at full health.
func updateDeadEnemy(enemy *components.EnemyData, hp *components.HealthData, state *components.StateData, clock *components.ClockData) {
	state.Transition(cfg.StateDead)

	if enemy.RespawnTimer <= 0 {
		span := cfg.Enemy.RespawnMax - cfg.Enemy.RespawnMin
		enemy.RespawnTimer = cfg.Enemy.RespawnMin + clock.RNG.Float64()*span
		return
	}

	enemy.RespawnTimer -= clock.DT
	if enemy.RespawnTimer <= 0 {
		enemy.RespawnTimer = 0
		hp.Alive = true
		hp.Current = hp.Max
		state.Transition(cfg.StateWander)
	}
}

func handleChase(enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData, state *components.StateData, toPlayer gamemath.Vec2, dt float64) {
	state.Transition(cfg.StateChase)
	physics.Velocity = toPlayer.Normalized().Scale(enemy.Speed)
	obj.SetCenter(obj.Center().Add(physics.Velocity.Scale(dt)))
}

// handleMeleeAttack lands a hit when the cooldown is clear and the player is
// not in an invulnerability window. The cooldown is not burned on an
// invulnerable player.
func handleMeleeAttack(enemyEntry *donburi.Entry, enemy *components.EnemyData, obj *components.ObjectData, state *components.StateData, playerHP *components.HealthData, playerObj *components.ObjectData) {
	state.Transition(cfg.StateAttack)

	if enemy.AttackCooldown > 0 || playerHP == nil || playerHP.InvulnTimer > 0 {
		return
	}

	enemy.AttackCooldown = cfg.Enemy.AttackCooldown

	playerEntry, ok := playerObj.Data.(*donburi.Entry)
	if !ok {
		return
	}
	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
		Amount: cfg.Enemy.Damage,
	})
}

// handleWander damps the current velocity each tick and occasionally picks a
// fresh random heading at half speed.
func handleWander(enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData, state *components.StateData, clock *components.ClockData, dt float64) {
	state.Transition(cfg.StateWander)

	physics.Velocity = physics.Velocity.Scale(cfg.Enemy.WanderDamping)
	if clock.RNG.Float64() < cfg.Enemy.WanderTurnChance {
		ang := clock.RNG.Float64() * 2 * math.Pi
		speed := enemy.Speed * cfg.Enemy.WanderSpeedScale
		physics.Velocity = gamemath.Vec2{X: math.Cos(ang), Y: math.Sin(ang)}.Scale(speed)
	}
	obj.SetCenter(obj.Center().Add(physics.Velocity.Scale(dt)))
}

func clampToArena(obj *components.ObjectData) {
	margin := cfg.Arena.Margin
	center := obj.Center()
	center.X = gamemath.Clamp(center.X, margin, float64(cfg.C.Width)-margin)
	center.Y = gamemath.Clamp(center.Y, margin, float64(cfg.C.Height)-margin)
	obj.SetCenter(center)
}
