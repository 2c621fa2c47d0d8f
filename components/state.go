package components

import (
	"github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
)

// StateData is the single source of truth for a character's discrete state.
//
// CurrentState is decided once per tick by the state machine. PreviousState
// trails it and is advanced only by the animation dispatcher after a
// successful clip dispatch, so a pending transition stays observable across
// ticks until it has actually been consumed (the retry path for rigs that
// have not resolved yet depends on this).
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	Lock          ActionLock
}

// Transition is the tagged result of transition detection: either the
// character entered CurrentState on a not-yet-dispatched tick, or it is
// sustaining it.
type Transition struct {
	State   config.StateID
	Entered bool
}

// Transition reports whether the current state still awaits dispatch.
func (s *StateData) Transition() Transition {
	return Transition{
		State:   s.CurrentState,
		Entered: s.CurrentState != s.PreviousState,
	}
}

// MarkDispatched consumes the pending transition.
func (s *StateData) MarkDispatched() {
	s.PreviousState = s.CurrentState
}

var State = donburi.NewComponentType[StateData]()
