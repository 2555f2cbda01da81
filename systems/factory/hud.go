package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/archetypes"
	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/telemetry"
)

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{
		LastHP:       float64(cfg.Player.Health),
		LastStamina:  cfg.Player.StaminaMax,
		TrailHP:      float64(cfg.Player.Health),
		TrailStamina: cfg.Player.StaminaMax,
	})
	return hud
}

func CreateTelemetry(ecs *ecs.ECS, sink *telemetry.Sink) *donburi.Entry {
	entry := archetypes.Telemetry.Spawn(ecs)
	components.Telemetry.SetValue(entry, components.TelemetryData{Sink: sink})
	return entry
}
