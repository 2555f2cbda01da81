package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/fonts"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

// UpdateHUD tracks the player's health and stamina and drives the trailing
// bars. On a drop the trail eases down from the old value; on a gain it
// snaps up immediately.
func UpdateHUD(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		// Player removed; let any running tween finish on the overlay.
		advanceTrails(hud, clock.DT)
		return
	}

	hp := float64(components.Health.Get(playerEntry).Current)
	stamina := components.Stamina.Get(playerEntry).Current

	if hp < hud.LastHP {
		hud.HPTween = gween.New(float32(hud.TrailHP), float32(hp),
			float32(cfg.UI.TrailDuration), ease.OutQuad)
	} else if hp > hud.LastHP {
		hud.TrailHP = hp
		hud.HPTween = nil
	}

	if stamina < hud.LastStamina {
		hud.StaminaTween = gween.New(float32(hud.TrailStamina), float32(stamina),
			float32(cfg.UI.TrailDuration), ease.OutQuad)
	} else if stamina > hud.LastStamina {
		hud.TrailStamina = stamina
		hud.StaminaTween = nil
	}

	hud.LastHP = hp
	hud.LastStamina = stamina

	advanceTrails(hud, clock.DT)
}

func advanceTrails(hud *components.HUDData, dt float64) {
	if hud.HPTween != nil {
		v, done := hud.HPTween.Update(float32(dt))
		hud.TrailHP = float64(v)
		if done {
			hud.HPTween = nil
		}
	}
	if hud.StaminaTween != nil {
		v, done := hud.StaminaTween.Update(float32(dt))
		hud.TrailStamina = float64(v)
		if done {
			hud.StaminaTween = nil
		}
	}
}

// DrawHUD renders the player bars, cooldown readouts and the enemy counter.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	playerEntry, hasPlayer := tags.Player.First(e.World)

	hpRatio := 0.0
	trailRatio := 0.0
	staminaRatio := 0.0
	if hasPlayer {
		hp := components.Health.Get(playerEntry)
		stamina := components.Stamina.Get(playerEntry)
		hpRatio = float64(hp.Current) / float64(hp.Max)
		trailRatio = hud.TrailHP / float64(hp.Max)
		staminaRatio = stamina.Current / stamina.Max
	}

	// Health bar with the trailing damage chunk behind the fill.
	drawBar(screen, cfg.UI.BarX, cfg.UI.BarY,
		cfg.UI.HealthWidth, cfg.UI.HealthHeight,
		cfg.UI.HealthBgColor, cfg.UI.HealthFgColor, hpRatio)
	if trailRatio > hpRatio {
		vector.DrawFilledRect(screen,
			float32(cfg.UI.BarX+cfg.UI.HealthWidth*hpRatio), float32(cfg.UI.BarY),
			float32(cfg.UI.HealthWidth*(trailRatio-hpRatio)), float32(cfg.UI.HealthHeight),
			cfg.UI.HealthTrailColor, false)
	}
	vector.StrokeRect(screen,
		float32(cfg.UI.BarX), float32(cfg.UI.BarY),
		float32(cfg.UI.HealthWidth), float32(cfg.UI.HealthHeight),
		float32(cfg.UI.BorderWidth), cfg.White, false)

	staminaY := cfg.UI.BarY + cfg.UI.HealthHeight + cfg.UI.BarGap
	drawBar(screen, cfg.UI.BarX, staminaY,
		cfg.UI.StaminaWidth, cfg.UI.StaminaHeight,
		cfg.UI.StaminaBgColor, cfg.UI.StaminaFgColor, staminaRatio)

	hudFont := fonts.HUD.Get()

	if hasPlayer {
		player := components.Player.Get(playerEntry)
		readout := fmt.Sprintf("ATK CD %.2f   ROLL CD %.2f",
			player.AttackCooldown, player.RollCooldown)
		readoutY := staminaY + cfg.UI.StaminaHeight + cfg.UI.BarGap
		text.Draw(screen, readout, hudFont,
			int(cfg.UI.BarX), int(readoutY)+11, cfg.UI.TextColor)
	}

	// Enemy counter, top right.
	counter := fmt.Sprintf("Enemies %d/%d", countAliveEnemies(e), cfg.Encounter.EnemyCount)
	counterX := cfg.C.Width - len(counter)*fonts.GlyphWidth - int(cfg.UI.BarX)
	text.Draw(screen, counter, hudFont, counterX, int(cfg.UI.BarY)+11, cfg.UI.TextColor)
}

func drawBar(screen *ebiten.Image, x, y, w, h float64, bg, fg color.RGBA, ratio float64) {
	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(w), float32(h),
		bg, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen,
			float32(x), float32(y), float32(w*clampRatio(ratio)), float32(h),
			fg, false)
	}
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
