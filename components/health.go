package components

import "github.com/yohamta/donburi"

// HealthData tracks hit points and the shared invulnerability grace window.
// InvulnTimer covers both the post-hit grace and the roll window; damage is
// rejected while it is above zero.
type HealthData struct {
	Current     int
	Max         int
	Alive       bool
	InvulnTimer float64
}

var Health = donburi.NewComponentType[HealthData]()
