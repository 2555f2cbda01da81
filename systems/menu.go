package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/fonts"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const menuTitle = "ASHEN ARENA"

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createArenaScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		navigateMenu(menu, input)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case "Start":
				sceneChanger.ChangeScene(createArenaScene())
			case "Exit":
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// navigateMenu moves the selection with wrap-around.
func navigateMenu(menu *components.MenuData, input *components.InputData) {
	numOptions := len(menu.Options)
	if numOptions == 0 {
		return
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCenteredText(screen, menuTitle, fonts.Title.Get(),
		width, cfg.Menu.TitleY, cfg.Menu.TitleColor)

	drawMenuOptions(screen, menu, width,
		cfg.Menu.MenuStartY, cfg.Menu.MenuItemHeight, cfg.Menu.MenuItemGap,
		cfg.Menu.TextColorNormal, cfg.Menu.TextColorSelected)

	hint := "Arrows: Navigate   Enter: Select"
	drawCenteredText(screen, hint, fonts.Small.Get(),
		width, height-24, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Options:       cfg.Menu.MenuOptions,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
