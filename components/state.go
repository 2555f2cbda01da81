package components

import (
	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/config"
)

type StateData struct {
	Current    config.StateID
	Previous   config.StateID
	StateTimer float64
}

// Transition switches states and resets the state timer. No-op when the
// target state is already active.
func (s *StateData) Transition(to config.StateID) {
	if s.Current == to {
		return
	}
	s.Previous = s.Current
	s.Current = to
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
