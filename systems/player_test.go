package systems

import (
	"testing"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/systems/factory"
)

func TestRollConsumesStaminaAndGrantsInvuln(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)

	pressActions(e, cfg.ActionRoll)
	UpdatePlayer(e)

	player := components.Player.Get(entry)
	if !player.IsRolling {
		t.Fatal("expected player to be rolling")
	}
	stamina := components.Stamina.Get(entry)
	want := cfg.Player.StaminaMax - cfg.Player.RollStaminaCost
	if !almostEqual(stamina.Current, want, 1e-9) {
		t.Fatalf("stamina after roll = %f, want %f", stamina.Current, want)
	}
	hp := components.Health.Get(entry)
	if !almostEqual(hp.InvulnTimer, cfg.Player.RollInvuln, 1e-9) {
		t.Fatalf("invuln after roll = %f, want %f", hp.InvulnTimer, cfg.Player.RollInvuln)
	}
	physics := components.Physics.Get(entry)
	if !almostEqual(physics.Velocity.X, cfg.Player.RollSpeed, 1e-9) || physics.Velocity.Y != 0 {
		t.Fatalf("roll velocity = %+v, want {%f 0}", physics.Velocity, cfg.Player.RollSpeed)
	}
	if components.State.Get(entry).Current != cfg.Rolling {
		t.Fatalf("state = %v, want %v", components.State.Get(entry).Current, cfg.Rolling)
	}
}

func TestRollRejectedWithoutStamina(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)
	components.Stamina.Get(entry).Current = cfg.Player.RollStaminaCost - 5

	pressActions(e, cfg.ActionRoll)
	UpdatePlayer(e)

	if components.Player.Get(entry).IsRolling {
		t.Fatal("roll should be rejected below the stamina cost")
	}
}

func TestRollEndsAndCooldownBlocksNextRoll(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)
	player := components.Player.Get(entry)

	pressActions(e, cfg.ActionRoll)
	UpdatePlayer(e)

	// Hold nothing until the roll window closes.
	for i := 0; i < 64 && player.IsRolling; i++ {
		pressActions(e)
		UpdatePlayer(e)
	}
	if player.IsRolling {
		t.Fatal("roll window never closed")
	}
	physics := components.Physics.Get(entry)
	if physics.Velocity.X != 0 || physics.Velocity.Y != 0 {
		t.Fatalf("velocity after roll end = %+v, want zero", physics.Velocity)
	}

	// Cooldown is still running, so a second roll is refused.
	if player.RollCooldown <= 0 {
		t.Fatalf("roll cooldown = %f, want > 0", player.RollCooldown)
	}
	pressActions(e, cfg.ActionRoll)
	UpdatePlayer(e)
	if player.IsRolling {
		t.Fatal("second roll should be blocked by the cooldown")
	}
}

func TestStaminaDoesNotRegenWhileRolling(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)
	stamina := components.Stamina.Get(entry)
	stamina.Current = 50

	pressActions(e, cfg.ActionRoll)
	UpdatePlayer(e)
	afterRoll := stamina.Current

	pressActions(e)
	UpdatePlayer(e)
	if stamina.Current != afterRoll {
		t.Fatalf("stamina regenerated mid-roll: %f -> %f", afterRoll, stamina.Current)
	}
}

func TestLightAttackWinsWhenBothPressed(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)

	pressActions(e, cfg.ActionLightAttack, cfg.ActionHeavyAttack)
	UpdatePlayer(e)

	player := components.Player.Get(entry)
	if player.AttackKind != cfg.AttackLight {
		t.Fatalf("attack kind = %v, want %v", player.AttackKind, cfg.AttackLight)
	}
	stamina := components.Stamina.Get(entry)
	want := cfg.Player.StaminaMax - cfg.Player.LightStaminaCost
	if !almostEqual(stamina.Current, want, 1e-9) {
		t.Fatalf("stamina = %f, want %f (only the light cost debited)", stamina.Current, want)
	}
}

func TestHeavyAttackUsesHeavyNumbers(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)

	pressActions(e, cfg.ActionHeavyAttack)
	UpdatePlayer(e)

	player := components.Player.Get(entry)
	if player.AttackKind != cfg.AttackHeavy {
		t.Fatalf("attack kind = %v, want %v", player.AttackKind, cfg.AttackHeavy)
	}
	stamina := components.Stamina.Get(entry)
	want := cfg.Player.StaminaMax - cfg.Player.HeavyStaminaCost
	if !almostEqual(stamina.Current, want, 1e-9) {
		t.Fatalf("stamina = %f, want %f", stamina.Current, want)
	}
}

func TestAttackRejectedWithoutStamina(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)
	components.Stamina.Get(entry).Current = 5

	pressActions(e, cfg.ActionHeavyAttack)
	UpdatePlayer(e)

	player := components.Player.Get(entry)
	if player.AttackTimer > 0 || player.AttackCooldown > 0 {
		t.Fatal("attack should be rejected below the stamina cost")
	}
}

func TestVelocityBlendsTowardInput(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)

	pressActions(e, cfg.ActionMoveRight)
	UpdatePlayer(e)

	physics := components.Physics.Get(entry)
	want := cfg.Player.MoveSpeed * cfg.Player.BlendRate * testDT
	if !almostEqual(physics.Velocity.X, want, 1e-9) {
		t.Fatalf("velocity.X after one tick = %f, want %f", physics.Velocity.X, want)
	}

	// Holding the direction keeps converging on full speed.
	for i := 0; i < 600; i++ {
		pressActions(e, cfg.ActionMoveRight)
		UpdatePlayer(e)
	}
	if !almostEqual(physics.Velocity.X, cfg.Player.MoveSpeed, 0.5) {
		t.Fatalf("velocity.X after convergence = %f, want ~%f", physics.Velocity.X, cfg.Player.MoveSpeed)
	}
}

func TestFacingFollowsLastMovement(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 960, 540)
	entry := playerEntry(e)

	pressActions(e, cfg.ActionMoveUp)
	UpdatePlayer(e)

	player := components.Player.Get(entry)
	if !almostEqual(player.Facing.X, 0, 1e-9) || !almostEqual(player.Facing.Y, -1, 1e-9) {
		t.Fatalf("facing = %+v, want {0 -1}", player.Facing)
	}

	// Facing persists when movement stops.
	pressActions(e)
	UpdatePlayer(e)
	if !almostEqual(player.Facing.Y, -1, 1e-9) {
		t.Fatalf("facing lost after releasing movement: %+v", player.Facing)
	}
}

func TestPlayerClampedToArenaMargin(t *testing.T) {
	e := newArena(1)
	factory.CreatePlayer(e, 30, 540)
	entry := playerEntry(e)

	for i := 0; i < 300; i++ {
		pressActions(e, cfg.ActionMoveLeft)
		UpdatePlayer(e)
	}

	center := components.Object.Get(entry).Center()
	if center.X != cfg.Arena.Margin {
		t.Fatalf("center.X = %f, want clamp at %f", center.X, cfg.Arena.Margin)
	}
}
