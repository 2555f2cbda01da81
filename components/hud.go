package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData is the singleton HUD state. The trailing bars lag behind the real
// values via tweens, souls-style: on a drop the trail eases down over
// config.UI.TrailDuration.
type HUDData struct {
	// Last known values, used to detect drops.
	LastHP      float64
	LastStamina float64

	// Trailing display values and their active tweens.
	TrailHP      float64
	TrailStamina float64
	HPTween      *gween.Tween
	StaminaTween *gween.Tween
}

var HUD = donburi.NewComponentType[HUDData]()
