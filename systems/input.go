package systems

import (
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run before UpdatePlayers in the system order.
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

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge left analog stick into the directional actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveForward] = true
		}
		if horizontal < -cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveBackward] = true
		}
	}
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

// SampleIntent reduces the frame's input to the single requested action.
// Precedence when several hold at once: punch over kick over forward over
// backward; anything else is idle. Attacks trigger on the press edge,
// movement on the held state, matching how the actions feel on a pad.
func SampleIntent(input *components.InputData) components.Intent {
	switch {
	case GetAction(input, cfg.ActionPunch).JustPressed:
		return components.IntentPunch
	case GetAction(input, cfg.ActionKick).JustPressed:
		return components.IntentKick
	case GetAction(input, cfg.ActionMoveForward).Pressed:
		return components.IntentMoveForward
	case GetAction(input, cfg.ActionMoveBackward).Pressed:
		return components.IntentMoveBackward
	default:
		return components.IntentIdle
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
