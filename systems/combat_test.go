package systems

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
	"github.com/Arch2jz/Elden-ring-parody/systems/factory"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

func TestApplyDamageRules(t *testing.T) {
	tests := []struct {
		name      string
		hp        components.HealthData
		amount    int
		applied   bool
		wantHP    int
		wantAlive bool
	}{
		{
			name:      "plain hit",
			hp:        components.HealthData{Current: 80, Max: 80, Alive: true},
			amount:    28,
			applied:   true,
			wantHP:    52,
			wantAlive: true,
		},
		{
			name:      "rejected while invulnerable",
			hp:        components.HealthData{Current: 80, Max: 80, Alive: true, InvulnTimer: 0.2},
			amount:    28,
			applied:   false,
			wantHP:    80,
			wantAlive: true,
		},
		{
			name:      "rejected when already down",
			hp:        components.HealthData{Current: 0, Max: 80, Alive: false},
			amount:    28,
			applied:   false,
			wantHP:    0,
			wantAlive: false,
		},
		{
			name:      "killing blow clamps to zero",
			hp:        components.HealthData{Current: 10, Max: 80, Alive: true},
			amount:    28,
			applied:   true,
			wantHP:    0,
			wantAlive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hp := tt.hp
			got := ApplyDamage(&hp, tt.amount)
			if got != tt.applied {
				t.Fatalf("applied = %v, want %v", got, tt.applied)
			}
			if hp.Current != tt.wantHP || hp.Alive != tt.wantAlive {
				t.Fatalf("hp = %d alive = %v, want %d %v", hp.Current, hp.Alive, tt.wantHP, tt.wantAlive)
			}
			if tt.applied && hp.InvulnTimer != cfg.Combat.HitInvuln {
				t.Fatalf("invuln = %f, want %f", hp.InvulnTimer, cfg.Combat.HitInvuln)
			}
		})
	}
}

func TestLightSwingHitsEnemyOncePerSwing(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	enemy := factory.CreateEnemy(e, 1020, 540)

	pressActions(e, cfg.ActionLightAttack)
	stepCombatFrame(e)

	hp := components.Health.Get(enemy)
	want := cfg.Enemy.Health - cfg.Combat.HitDamage
	if hp.Current != want {
		t.Fatalf("enemy hp after swing = %d, want %d", hp.Current, want)
	}
	if hp.InvulnTimer != cfg.Combat.HitInvuln {
		t.Fatalf("enemy invuln = %f, want %f", hp.InvulnTimer, cfg.Combat.HitInvuln)
	}
	// Pushed away from the player along +X.
	center := components.Object.Get(enemy).Center()
	if center.X <= 1020 {
		t.Fatalf("enemy center.X = %f, want knockback beyond 1020", center.X)
	}

	// The same swing never lands twice.
	pressActions(e)
	stepCombatFrame(e)
	if hp.Current != want {
		t.Fatalf("enemy hp after second tick = %d, want unchanged %d", hp.Current, want)
	}
}

func TestSwingWindowClosesAndHitboxIsRemoved(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)

	pressActions(e, cfg.ActionLightAttack)
	stepCombatFrame(e)
	if components.Player.Get(entry).ActiveHitbox == nil {
		t.Fatal("expected an active hitbox during the swing")
	}

	for i := 0; i < 30; i++ {
		pressActions(e)
		stepCombatFrame(e)
	}

	if components.Player.Get(entry).ActiveHitbox != nil {
		t.Fatal("hitbox still active after the swing window closed")
	}
	count := 0
	tags.Hitbox.Each(e.World, func(_ *donburi.Entry) { count++ })
	if count != 0 {
		t.Fatalf("found %d hitbox entities after cleanup, want 0", count)
	}
}

func TestRepeatedSwingsKillEnemy(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	enemy := factory.CreateEnemy(e, 1020, 540)
	hp := components.Health.Get(enemy)

	killed := false
	for i := 0; i < 600; i++ {
		pressActions(e, cfg.ActionLightAttack)
		stepCombatFrame(e)
		if !hp.Alive {
			killed = true
			break
		}
	}

	if !killed {
		t.Fatalf("enemy still alive after 600 ticks, hp = %d", hp.Current)
	}
	if hp.Current != 0 {
		t.Fatalf("dead enemy hp = %d, want 0", hp.Current)
	}
	if !enemy.Valid() {
		t.Fatal("dead enemy should stay in the world as a corpse")
	}
}

func TestKnockbackSkippedWhenCoincident(t *testing.T) {
	e := newArena(1)
	enemy := factory.CreateEnemy(e, 500, 500)
	center := components.Object.Get(enemy).Center()

	donburi.Add(enemy, components.DamageEvent, &components.DamageEventData{
		Amount:    10,
		Knockback: cfg.Combat.Knockback,
		Source:    center,
	})
	UpdateCombat(e)

	got := components.Object.Get(enemy).Center()
	if got != center {
		t.Fatalf("coincident knockback moved the enemy: %+v -> %+v", center, got)
	}
	if components.Health.Get(enemy).Current != cfg.Enemy.Health-10 {
		t.Fatalf("damage not applied: hp = %d", components.Health.Get(enemy).Current)
	}
}

func TestKillingBlowStartsPlayerDeathSequence(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)
	hp := components.Health.Get(entry)
	hp.Current = 10
	components.Physics.Get(entry).Velocity = gamemath.Vec2{X: 100}

	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Amount: cfg.Enemy.Damage,
	})
	UpdateCombat(e)

	if hp.Alive {
		t.Fatal("player should be down")
	}
	if !entry.HasComponent(components.Death) {
		t.Fatal("expected a death sequence on the killing blow")
	}
	if v := components.Physics.Get(entry).Velocity; v.X != 0 || v.Y != 0 {
		t.Fatalf("velocity on death = %+v, want zero", v)
	}

	// The death delay runs out and the entity is removed.
	ticks := int(cfg.GameOver.DeathDelay/testDT) + 2
	for i := 0; i < ticks; i++ {
		UpdateDeaths(e)
	}
	if _, ok := components.Player.First(e.World); ok {
		t.Fatal("player entity should be removed after the death delay")
	}
}
