package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/systems/factory"
)

const testDT = 1.0 / 120

// newArena builds a headless world with a space and a seeded clock. Tests
// drive the update systems directly instead of going through ebiten.
func newArena(seed int64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 64, 64)
	factory.CreateClock(e, testDT, rand.New(rand.NewSource(seed)))
	return e
}

// pressActions advances the input buffers one frame with the given actions
// held, standing in for UpdateInput which polls real hardware.
func pressActions(e *ecs.ECS, held ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range held {
		input.Current[id] = true
	}
}

// stepCombatFrame runs one simulation tick in the arena system order,
// minus input polling and presentation.
func stepCombatFrame(e *ecs.ECS) {
	UpdatePlayer(e)
	UpdateEnemies(e)
	UpdateObjects(e)
	UpdateCombatHitboxes(e)
	UpdateCombat(e)
	UpdateDeaths(e)
	UpdateEffects(e)
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func playerEntry(e *ecs.ECS) *donburi.Entry {
	entry, _ := components.Player.First(e.World)
	return entry
}
