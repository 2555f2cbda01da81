package systems

import (
	"testing"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
	"github.com/Arch2jz/Elden-ring-parody/systems/factory"
)

func TestEnemyChasesPlayerInsidePerception(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	enemy := factory.CreateEnemy(e, 960+200, 540)

	UpdateEnemies(e)

	center := components.Object.Get(enemy).Center()
	wantX := 960 + 200 - cfg.Enemy.MoveSpeed*testDT
	if !almostEqual(center.X, wantX, 1e-9) {
		t.Fatalf("enemy center.X = %f, want %f", center.X, wantX)
	}
	if got := components.State.Get(enemy).Current; got != cfg.StateChase {
		t.Fatalf("state = %v, want %v", got, cfg.StateChase)
	}
}

func TestEnemyWandersOutsidePerception(t *testing.T) {
	// Seed 1's first draw is above the turn chance, so the tick only damps.
	e := newArena(1)
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 900, 900)
	components.Physics.Get(enemy).Velocity = gamemath.Vec2{X: 50}

	UpdateEnemies(e)

	v := components.Physics.Get(enemy).Velocity
	want := 50 * cfg.Enemy.WanderDamping
	if !almostEqual(v.X, want, 1e-9) {
		t.Fatalf("wander velocity.X = %f, want %f", v.X, want)
	}
	if got := components.State.Get(enemy).Current; got != cfg.StateWander {
		t.Fatalf("state = %v, want %v", got, cfg.StateWander)
	}
}

func TestEnemyMeleeDamagesPlayerAndArmsCooldown(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	enemy := factory.CreateEnemy(e, 960+30, 540)
	player := playerEntry(e)

	UpdateEnemies(e)
	UpdateCombat(e)

	hp := components.Health.Get(player)
	want := cfg.Player.Health - cfg.Enemy.Damage
	if hp.Current != want {
		t.Fatalf("player hp = %d, want %d", hp.Current, want)
	}
	if hp.InvulnTimer != cfg.Combat.HitInvuln {
		t.Fatalf("player invuln = %f, want %f", hp.InvulnTimer, cfg.Combat.HitInvuln)
	}
	if got := components.State.Get(enemy).Current; got != cfg.StateAttack {
		t.Fatalf("state = %v, want %v", got, cfg.StateAttack)
	}

	// The cooldown blocks a second hit on the next tick.
	UpdateEnemies(e)
	UpdateCombat(e)
	if hp.Current != want {
		t.Fatalf("player hp after cooldown tick = %d, want unchanged %d", hp.Current, want)
	}
	if cd := components.Enemy.Get(enemy).AttackCooldown; cd <= 0 {
		t.Fatalf("attack cooldown = %f, want > 0", cd)
	}
}

func TestEnemyKeepsCooldownAgainstInvulnerablePlayer(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	enemy := factory.CreateEnemy(e, 960+30, 540)
	player := playerEntry(e)
	components.Health.Get(player).InvulnTimer = 1.0

	UpdateEnemies(e)

	if player.HasComponent(components.DamageEvent) {
		t.Fatal("no damage event should be queued against an invulnerable player")
	}
	if cd := components.Enemy.Get(enemy).AttackCooldown; cd != 0 {
		t.Fatalf("attack cooldown = %f, want 0 (not burned on an invulnerable player)", cd)
	}
}

func TestDeadEnemyRevivesInPlaceAtFullHealth(t *testing.T) {
	e := newArena(1)
	enemy := factory.CreateEnemy(e, 700, 700)
	hp := components.Health.Get(enemy)
	hp.Alive = false
	hp.Current = 0
	before := components.Object.Get(enemy).Center()

	// First dead tick arms the respawn timer inside [RespawnMin, RespawnMax].
	UpdateEnemies(e)
	timer := components.Enemy.Get(enemy).RespawnTimer
	if timer < cfg.Enemy.RespawnMin || timer > cfg.Enemy.RespawnMax {
		t.Fatalf("respawn timer = %f, want within [%f, %f]", timer, cfg.Enemy.RespawnMin, cfg.Enemy.RespawnMax)
	}
	if got := components.State.Get(enemy).Current; got != cfg.StateDead {
		t.Fatalf("state = %v, want %v", got, cfg.StateDead)
	}

	ticks := int(cfg.Enemy.RespawnMax/testDT) + 2
	for i := 0; i < ticks && !hp.Alive; i++ {
		UpdateEnemies(e)
	}

	if !hp.Alive {
		t.Fatal("enemy never revived")
	}
	if hp.Current != hp.Max {
		t.Fatalf("revived hp = %d, want %d", hp.Current, hp.Max)
	}
	if got := components.Object.Get(enemy).Center(); got != before {
		t.Fatalf("revive moved the enemy: %+v -> %+v", before, got)
	}
	if got := components.State.Get(enemy).Current; got != cfg.StateWander {
		t.Fatalf("state after revive = %v, want %v", got, cfg.StateWander)
	}
}
