package components

import "github.com/yohamta/donburi"

// EncounterData is the singleton bookkeeping for the enemy group. Waves
// counts full-group respawns since the arena started.
type EncounterData struct {
	Waves int
}

var Encounter = donburi.NewComponentType[EncounterData]()
