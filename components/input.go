package components

import (
	"github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on demand by comparing
// frames. Singleton component, filled by the input system each tick.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
