package components

import "github.com/yohamta/donburi"

// FlashData tracks the brief whiteout on a damaged entity. Duration is in
// seconds and decays in UpdateEffects.
type FlashData struct {
	Duration float64
}

var Flash = donburi.NewComponentType[FlashData]()
