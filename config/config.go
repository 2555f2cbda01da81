package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Radius    float64
	MoveSpeed float64
	BlendRate float64 // exponential velocity blend, per second

	// Roll
	RollSpeed       float64
	RollDuration    float64
	RollCooldown    float64
	RollInvuln      float64
	RollStaminaCost float64

	// Attacks
	LightWindow      float64
	LightCooldown    float64
	LightStaminaCost float64
	HeavyWindow      float64
	HeavyCooldown    float64
	HeavyStaminaCost float64

	// Combat
	Health int

	// Stamina
	StaminaMax   float64
	StaminaRegen float64 // per second
}

// EnemyConfig contains enemy AI configuration
type EnemyConfig struct {
	Radius    float64
	Health    int
	MoveSpeed float64

	// Perception and melee
	Perception     float64
	MeleeBuffer    float64 // added to the sum of radii for attack reach
	Damage         int
	AttackCooldown float64

	// Wander
	WanderDamping    float64 // velocity multiplier per tick
	WanderTurnChance float64 // per tick
	WanderSpeedScale float64 // fraction of MoveSpeed while wandering

	// Respawn
	RespawnMin float64
	RespawnMax float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Player attack hitbox
	HitboxRadius float64
	HitboxReach  float64 // distance from player edge to hitbox center

	HitDamage int
	Knockback float64 // positional push, world units

	// Invulnerability grace after any successful hit
	HitInvuln float64

	// Flash effect duration in seconds
	DamageFlash float64
}

// EncounterConfig contains enemy group spawn configuration
type EncounterConfig struct {
	EnemyCount         int
	SpawnMargin        float64 // initial spawn distance from arena edges
	RespawnMargin      float64 // group respawn distance from arena edges
	GroupRespawnChance float64 // per tick, once all enemies are down
}

// UIConfig contains HUD layout and color values
type UIConfig struct {
	BarX          float64
	BarY          float64
	HealthWidth   float64
	HealthHeight  float64
	StaminaWidth  float64
	StaminaHeight float64
	BarGap        float64
	BorderWidth   float64

	// Trailing damage bar
	TrailDuration float64

	HealthBgColor    color.RGBA
	HealthFgColor    color.RGBA
	HealthTrailColor color.RGBA
	StaminaBgColor   color.RGBA
	StaminaFgColor   color.RGBA
	TextColor        color.RGBA

	// Small per-entity health bars
	EntityBarWidth  float64
	EntityBarHeight float64
	EntityBarOffset float64
}

// ArenaConfig contains arena bounds and look
type ArenaConfig struct {
	Margin   float64 // movement clamp distance from the edges
	GridStep float64

	BackgroundColor color.RGBA
	GridColor       color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	DeathDelay        float64 // seconds between the killing blow and the overlay
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool  // Skip menu and go directly to the arena
	ShowHitboxes bool  // Draw attack hitbox outlines
	Seed         int64 // Fixed RNG seed, 0 = time-based
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Encounter EncounterConfig
var UI UIConfig
var Arena ArenaConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PlayerBlue   = color.RGBA{R: 50, G: 120, B: 200, A: 255}
	EnemyRed     = color.RGBA{R: 180, G: 80, B: 70, A: 255}
	CorpseGray   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	InvulnGold   = color.RGBA{R: 200, G: 200, B: 60, A: 255}
	HitboxGold   = color.RGBA{R: 240, G: 220, B: 120, A: 255}
	FacingWhite  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		TPS:    120,
	}

	Player = PlayerConfig{
		Radius:    16,
		MoveSpeed: 180,
		BlendRate: 10,

		RollSpeed:       420,
		RollDuration:    0.26,
		RollCooldown:    0.8,
		RollInvuln:      0.28,
		RollStaminaCost: 20,

		LightWindow:      0.18,
		LightCooldown:    0.45,
		LightStaminaCost: 12,
		HeavyWindow:      0.34,
		HeavyCooldown:    1.0,
		HeavyStaminaCost: 28,

		Health: 120,

		StaminaMax:   100,
		StaminaRegen: 20,
	}

	Enemy = EnemyConfig{
		Radius:    16,
		Health:    80,
		MoveSpeed: 100,

		Perception:     300,
		MeleeBuffer:    6,
		Damage:         12,
		AttackCooldown: 1.0,

		WanderDamping:    0.9,
		WanderTurnChance: 0.01,
		WanderSpeedScale: 0.5,

		RespawnMin: 3.0,
		RespawnMax: 6.0,
	}

	Combat = CombatConfig{
		HitboxRadius: 30,
		HitboxReach:  24,
		HitDamage:    28,
		Knockback:    12,
		HitInvuln:    0.5,
		DamageFlash:  0.12,
	}

	Encounter = EncounterConfig{
		EnemyCount:         4,
		SpawnMargin:        100,
		RespawnMargin:      60,
		GroupRespawnChance: 0.01,
	}

	UI = UIConfig{
		BarX:          12,
		BarY:          12,
		HealthWidth:   220,
		HealthHeight:  22,
		StaminaWidth:  220,
		StaminaHeight: 14,
		BarGap:        8,
		BorderWidth:   2,

		TrailDuration: 0.6,

		HealthBgColor:    color.RGBA{R: 50, G: 10, B: 10, A: 255},
		HealthFgColor:    color.RGBA{R: 220, G: 80, B: 60, A: 255},
		HealthTrailColor: color.RGBA{R: 240, G: 180, B: 80, A: 255},
		StaminaBgColor:   color.RGBA{R: 30, G: 30, B: 30, A: 255},
		StaminaFgColor:   color.RGBA{R: 160, G: 200, B: 120, A: 255},
		TextColor:        White,

		EntityBarWidth:  60,
		EntityBarHeight: 8,
		EntityBarOffset: 30,
	}

	Arena = ArenaConfig{
		Margin:   20,
		GridStep: 64,

		BackgroundColor: color.RGBA{R: 18, G: 18, B: 30, A: 255},
		GridColor:       color.RGBA{R: 12, G: 12, B: 20, A: 255},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 18, B: 32, A: 255},
		TitleColor:        BrightOrange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            360,
		MenuStartY:        480,
		MenuItemHeight:    36,
		MenuItemGap:       18,
		MenuOptions:       []string{"Start", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            400,
		MenuStartY:        520,
		MenuItemHeight:    36,
		MenuItemGap:       18,
		MenuOptions:       []string{"Retry", "Exit"},
		DeathDelay:        1.5,
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		ShowHitboxes: false,
		Seed:         0,
	}
}
