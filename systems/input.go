package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/Arch2jz/Elden-ring-parody/components"
	cfg "github.com/Arch2jz/Elden-ring-parody/config"
	"github.com/Arch2jz/Elden-ring-parody/shared/gamemath"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the singleton InputData.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, gpBtn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, gpBtn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	mergeAnalogStick(input)
}

// mergeAnalogStick folds the left stick into the directional actions.
func mergeAnalogStick(input *components.InputData) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveUp] = true
			input.Current[cfg.ActionMenuUp] = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveDown] = true
			input.Current[cfg.ActionMenuDown] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ActionJustPressed reports a rising edge on an action this frame. Scenes
// use it for transitions that live outside the system list.
func ActionJustPressed(e *ecs.ECS, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(e), id).JustPressed
}

// MoveVector returns the normalized movement direction from the held
// directional actions, or the zero vector when none are held.
func MoveVector(input *components.InputData) gamemath.Vec2 {
	var mv gamemath.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		mv.X -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		mv.X += 1
	}
	if input.Current[cfg.ActionMoveUp] {
		mv.Y -= 1
	}
	if input.Current[cfg.ActionMoveDown] {
		mv.Y += 1
	}
	return mv.Normalized()
}
