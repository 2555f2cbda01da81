package components

import (
	"github.com/yohamta/donburi"

	"github.com/Arch2jz/Elden-ring-parody/config"
)

// InputData is the singleton double-buffered action state. UpdateInput swaps
// the buffers each frame; JustPressed/JustReleased are derived on read.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// ActionState is the derived per-frame state of one action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var Input = donburi.NewComponentType[InputData]()
