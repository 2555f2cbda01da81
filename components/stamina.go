package components

import "github.com/yohamta/donburi"

type StaminaData struct {
	Current float64
	Max     float64
	Regen   float64 // per second, paused while rolling
}

var Stamina = donburi.NewComponentType[StaminaData]()
