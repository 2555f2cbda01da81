package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/tags"
)

// DrawArena fills the background and lays down the floor grid.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)

	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.Arena.BackgroundColor, false)

	step := float32(cfg.Arena.GridStep)
	for x := step; x < w; x += step {
		vector.StrokeLine(screen, x, 0, x, h, 1, cfg.Arena.GridColor, false)
	}
	for y := step; y < h; y += step {
		vector.StrokeLine(screen, 0, y, w, y, 1, cfg.Arena.GridColor, false)
	}
}

// DrawEntities renders enemies first, then the player on top.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		drawEnemy(screen, enemyEntry)
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawPlayer(screen, playerEntry)
	}
}

func drawEnemy(screen *ebiten.Image, enemyEntry *donburi.Entry) {
	obj := components.Object.Get(enemyEntry)
	hp := components.Health.Get(enemyEntry)
	center := obj.Center()

	if !hp.Alive {
		// Corpse, waiting out its respawn timer.
		vector.DrawFilledCircle(screen,
			float32(center.X), float32(center.Y), float32(obj.Radius),
			cfg.CorpseGray, true)
		return
	}

	vector.DrawFilledCircle(screen,
		float32(center.X), float32(center.Y), float32(obj.Radius),
		bodyColor(enemyEntry, cfg.EnemyRed), true)

	if hp.InvulnTimer > 0 {
		drawInvulnRing(screen, center.X, center.Y, obj.Radius)
	}
	if hp.Current < hp.Max {
		drawEntityHealthBar(screen, center.X, center.Y, hp)
	}
}

func drawPlayer(screen *ebiten.Image, playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry)
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	center := obj.Center()

	if hp.InvulnTimer > 0 {
		drawInvulnRing(screen, center.X, center.Y, obj.Radius)
	}

	body := cfg.PlayerBlue
	if !hp.Alive {
		body = cfg.CorpseGray
	}
	vector.DrawFilledCircle(screen,
		float32(center.X), float32(center.Y), float32(obj.Radius),
		bodyColor(playerEntry, body), true)

	// Facing indicator.
	tip := center.Add(player.Facing.Normalized().Scale(obj.Radius + 8))
	vector.StrokeLine(screen,
		float32(center.X), float32(center.Y),
		float32(tip.X), float32(tip.Y),
		2, cfg.FacingWhite, true)

	if hp.Current < hp.Max && hp.Alive {
		drawEntityHealthBar(screen, center.X, center.Y, hp)
	}
}

// bodyColor whitens the body while a hit flash is running.
func bodyColor(entry *donburi.Entry, base color.RGBA) color.RGBA {
	if !entry.HasComponent(components.Flash) {
		return base
	}
	if components.Flash.Get(entry).Duration <= 0 {
		return base
	}
	return color.RGBA{
		R: lighten(base.R),
		G: lighten(base.G),
		B: lighten(base.B),
		A: base.A,
	}
}

func lighten(c uint8) uint8 {
	v := uint16(c) + 120
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func drawInvulnRing(screen *ebiten.Image, x, y, radius float64) {
	vector.StrokeCircle(screen,
		float32(x), float32(y), float32(radius+8),
		2, cfg.InvulnGold, true)
}

func drawEntityHealthBar(screen *ebiten.Image, x, y float64, hp *components.HealthData) {
	w := cfg.UI.EntityBarWidth
	h := cfg.UI.EntityBarHeight
	barX := x - w/2
	barY := y - cfg.UI.EntityBarOffset

	vector.DrawFilledRect(screen,
		float32(barX), float32(barY), float32(w), float32(h),
		cfg.UI.HealthBgColor, false)

	ratio := float64(hp.Current) / float64(hp.Max)
	vector.DrawFilledRect(screen,
		float32(barX), float32(barY), float32(w*clampRatio(ratio)), float32(h),
		cfg.UI.HealthFgColor, false)
}
