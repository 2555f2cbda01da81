package components

import "github.com/yohamta/donburi"

// MenuData is the singleton selection state for menu-style scenes.
type MenuData struct {
	Options       []string
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
