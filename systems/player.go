package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
)

// UpdatePlayer advances the player controller: stamina, roll and attack
// actions, velocity blending and arena clamping. Runs first in the frame so
// enemies react to the already-updated player state.
func UpdatePlayer(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}
	components.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(e, playerEntry, clock.DT)
	})
}

func updateSinglePlayer(e *ecs.ECS, playerEntry *donburi.Entry, dt float64) {
	// A dying player only counts down; UpdateDeaths removes the entity.
	if playerEntry.HasComponent(components.Death) {
		return
	}

	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	hp := components.Health.Get(playerEntry)
	stamina := components.Stamina.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	hp.InvulnTimer = gamemath.Advance(hp.InvulnTimer, dt)

	mv := MoveVector(input)
	if mv.LengthSq() > 0 {
		player.Facing = mv
	}

	// Stamina regenerates except while rolling.
	if !player.IsRolling {
		stamina.Current = gamemath.Clamp(stamina.Current+stamina.Regen*dt, 0, stamina.Max)
	}

	handleRollInput(input, player, physics, hp, stamina)

	// Light is checked before heavy; starting either arms the shared attack
	// cooldown, so at most one attack begins per frame and light wins ties.
	attacking := handleAttackInput(input, player, stamina)

	advanceActionTimers(player, physics, dt)

	// Velocity blends toward the input direction except while rolling or on
	// the frame an attack starts.
	if !player.IsRolling && !attacking {
		target := mv.Scale(cfg.Player.MoveSpeed)
		physics.Velocity = physics.Velocity.Lerp(target, cfg.Player.BlendRate*dt)
	}

	integrateAndClamp(obj, physics, dt)
	updatePlayerState(playerEntry, player, physics, dt)
}

func handleRollInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, hp *components.HealthData, stamina *components.StaminaData) {
	if player.RollCooldown > 0 || !GetAction(input, cfg.ActionRoll).Pressed {
		return
	}
	if stamina.Current < cfg.Player.RollStaminaCost {
		return
	}

	player.IsRolling = true
	player.RollTimer = cfg.Player.RollDuration
	player.RollCooldown = cfg.Player.RollCooldown
	hp.InvulnTimer = cfg.Player.RollInvuln
	stamina.Current -= cfg.Player.RollStaminaCost
	physics.Velocity = player.Facing.Scale(cfg.Player.RollSpeed)
}

func handleAttackInput(input *components.InputData, player *components.PlayerData, stamina *components.StaminaData) bool {
	attacking := false

	if player.AttackCooldown <= 0 && GetAction(input, cfg.ActionLightAttack).Pressed {
		if stamina.Current >= cfg.Player.LightStaminaCost {
			player.AttackTimer = cfg.Player.LightWindow
			player.AttackCooldown = cfg.Player.LightCooldown
			player.AttackKind = cfg.AttackLight
			stamina.Current -= cfg.Player.LightStaminaCost
			attacking = true
		}
	}
	if player.AttackCooldown <= 0 && GetAction(input, cfg.ActionHeavyAttack).Pressed {
		if stamina.Current >= cfg.Player.HeavyStaminaCost {
			player.AttackTimer = cfg.Player.HeavyWindow
			player.AttackCooldown = cfg.Player.HeavyCooldown
			player.AttackKind = cfg.AttackHeavy
			stamina.Current -= cfg.Player.HeavyStaminaCost
			attacking = true
		}
	}

	return attacking
}

func advanceActionTimers(player *components.PlayerData, physics *components.PhysicsData, dt float64) {
	player.AttackTimer = gamemath.Advance(player.AttackTimer, dt)
	player.AttackCooldown = gamemath.Advance(player.AttackCooldown, dt)

	if player.RollTimer > 0 {
		player.RollTimer = gamemath.Advance(player.RollTimer, dt)
		if player.RollTimer == 0 {
			player.IsRolling = false
			physics.Velocity = gamemath.Vec2{}
		}
	}
	player.RollCooldown = gamemath.Advance(player.RollCooldown, dt)
}

func integrateAndClamp(obj *components.ObjectData, physics *components.PhysicsData, dt float64) {
	margin := cfg.Arena.Margin
	center := obj.Center().Add(physics.Velocity.Scale(dt))
	center.X = gamemath.Clamp(center.X, margin, float64(cfg.C.Width)-margin)
	center.Y = gamemath.Clamp(center.Y, margin, float64(cfg.C.Height)-margin)
	obj.SetCenter(center)
}

// updatePlayerState derives the display state from the action timers.
func updatePlayerState(playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, dt float64) {
	state := components.State.Get(playerEntry)
	state.StateTimer += dt

	switch {
	case player.IsRolling:
		state.Transition(cfg.Rolling)
	case player.AttackTimer > 0:
		state.Transition(player.AttackKind)
	case physics.Velocity.LengthSq() > 0:
		state.Transition(cfg.Moving)
	default:
		state.Transition(cfg.Idle)
	}
}
