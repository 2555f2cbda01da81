package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Menu  FontName = "menu"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// All faces are the builtin bitmap font; no font assets ship with the game.
var (
	fonts = map[FontName]font.Face{
		HUD:   basicfont.Face7x13,
		Title: basicfont.Face7x13,
		Menu:  basicfont.Face7x13,
		Small: basicfont.Face7x13,
	}
)

// GlyphWidth is the fixed advance of the bitmap face, used for centering.
const GlyphWidth = 7

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
