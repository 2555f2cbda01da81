package systems

import (
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/fonts"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createArenaScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateGameOverMenu(e)
		input := getOrCreateInput(e)

		navigateMenu(menu, input)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case "Retry":
				sceneChanger.ChangeScene(createArenaScene())
			case "Exit":
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateGameOverMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	drawCenteredText(screen, "YOU DIED", fonts.Title.Get(),
		width, cfg.GameOver.TitleY, cfg.GameOver.TitleColor)

	drawMenuOptions(screen, menu, width,
		cfg.GameOver.MenuStartY, cfg.GameOver.MenuItemHeight, cfg.GameOver.MenuItemGap,
		cfg.GameOver.TextColorNormal, cfg.GameOver.TextColorSelected)
}

// GetOrCreateGameOverMenu returns the singleton selection state for the
// game over screen, creating it if needed.
func GetOrCreateGameOverMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Options:       cfg.GameOver.MenuOptions,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

// drawCenteredText centers a line horizontally using the fixed glyph advance.
func drawCenteredText(screen *ebiten.Image, s string, face font.Face, width, y float64, clr color.RGBA) {
	textWidth := len(s) * fonts.GlyphWidth
	x := int((width - float64(textWidth)) / 2)
	text.Draw(screen, s, face, x, int(y), clr)
}

func drawMenuOptions(screen *ebiten.Image, menu *components.MenuData, width, startY, itemHeight, itemGap float64, normal, selected color.RGBA) {
	menuFont := fonts.Menu.Get()
	for i, option := range menu.Options {
		y := startY + float64(i)*(itemHeight+itemGap)

		textColor := normal
		if i == menu.SelectedIndex {
			textColor = selected
		}

		drawCenteredText(screen, option, menuFont, width, y+itemHeight, textColor)
	}
}
