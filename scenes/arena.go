package scenes

import (
	"image/color"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/systems"
	"github.com/Arch2jz/Elden-ring-parody/systems/factory"
	"github.com/Arch2jz/Elden-ring-parody/tags"
	"github.com/Arch2jz/Elden-ring-parody/telemetry"
)

// spaceCellSize is the broad-phase grid cell size in world units.
const spaceCellSize = 64

// ArenaScene runs the combat simulation
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	sink         *telemetry.Sink
	once         sync.Once
}

// NewArenaScene creates a new arena scene
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if systems.ActionJustPressed(as.ecs, cfg.ActionQuit) {
		as.sink.Close()
		os.Exit(0)
	}

	as.ecs.Update()
	as.checkGameOver()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())
	as.sink = telemetry.NewSink()

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	factory.CreateSpace(as.ecs, cfg.C.Width, cfg.C.Height, spaceCellSize, spaceCellSize)
	factory.CreateClock(as.ecs, 1.0/float64(cfg.C.TPS), rng)
	factory.CreateHUD(as.ecs)
	factory.CreateTelemetry(as.ecs, as.sink)
	factory.CreatePlayer(as.ecs, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
	factory.CreateEncounter(as.ecs)

	// Frame order: player, enemies, attack resolution, presentation,
	// group respawn last.
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdatePlayer)
	as.ecs.AddSystem(systems.UpdateEnemies)
	as.ecs.AddSystem(systems.UpdateObjects)
	as.ecs.AddSystem(systems.UpdateCombatHitboxes)
	as.ecs.AddSystem(systems.UpdateCombat)
	as.ecs.AddSystem(systems.UpdateDeaths)
	as.ecs.AddSystem(systems.UpdateEffects)
	as.ecs.AddSystem(systems.UpdateHUD)
	as.ecs.AddSystem(systems.UpdateEncounter)
	as.ecs.AddSystem(systems.UpdateFrameStats)

	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
}

// checkGameOver transitions once the player's death sequence has finished
// and removed the entity.
func (as *ArenaScene) checkGameOver() {
	if _, ok := tags.Player.First(as.ecs.World); ok {
		return
	}
	as.sink.Close()
	as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger))
}
