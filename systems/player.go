package systems

import (
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/logger"
	"github.com/automoto/dojoduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePlayers runs the character state machine for every controlled
// character: advance the action lock, sample the tick's intent, decide the
// next state. Runs after UpdateInput and before UpdateAnimations so the
// dispatcher always sees this tick's decision.
func UpdatePlayers(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	delta := TickDelta(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		stepCharacter(state, SampleIntent(input), delta)
	})
}

// stepCharacter is the per-tick transition function.
//
// A still-armed lock freezes the state: the intent is dropped outright and
// any pending transition stays armed for the dispatcher. A lock that
// elapses this tick clears inside Tick, so the new intent is accepted on
// the very tick the commitment ends.
func stepCharacter(state *components.StateData, intent components.Intent, delta float64) {
	if state.Lock.Active {
		if cfg.Debug.StrictInvariants && !state.CurrentState.IsAttack() {
			logger.Panic("action lock held outside attack state",
				zap.Stringer("state", state.CurrentState),
				zap.Float64("remaining", state.Lock.Remaining),
			)
		}
		if !state.Lock.Tick(delta) {
			return
		}
	}
	state.CurrentState = intentState(intent)
}

// intentState maps the sampled intent directly onto the next state.
func intentState(i components.Intent) cfg.StateID {
	switch i {
	case components.IntentPunch:
		return cfg.Punching
	case components.IntentKick:
		return cfg.Kicking
	case components.IntentMoveForward:
		return cfg.Running
	case components.IntentMoveBackward:
		return cfg.RunningBackwards
	default:
		return cfg.Idle
	}
}
