package systems

import (
	"testing"

	"github.com/automoto/dojoduel/archetypes"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// 1/8s divides the kick lock exactly, so lock expiry lands on a tick
// boundary without float drift.
const testDelta = 0.125

func TestStepCharacterMapsIntents(t *testing.T) {
	tests := []struct {
		name   string
		intent components.Intent
		want   cfg.StateID
	}{
		{"idle", components.IntentIdle, cfg.Idle},
		{"punch", components.IntentPunch, cfg.Punching},
		{"kick", components.IntentKick, cfg.Kicking},
		{"forward", components.IntentMoveForward, cfg.Running},
		{"backward", components.IntentMoveBackward, cfg.RunningBackwards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.Idle}
			stepCharacter(state, tt.intent, testDelta)
			if state.CurrentState != tt.want {
				t.Fatalf("state = %v, want %v", state.CurrentState, tt.want)
			}
		})
	}
}

func TestStepCharacterSingleTickTransition(t *testing.T) {
	// Idle to running and back in two consecutive ticks: the decision is
	// made the same tick the intent arrives, never deferred.
	state := &components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.Idle}

	stepCharacter(state, components.IntentMoveForward, testDelta)
	if state.CurrentState != cfg.Running {
		t.Fatalf("tick 1: state = %v, want Running", state.CurrentState)
	}
	stepCharacter(state, components.IntentIdle, testDelta)
	if state.CurrentState != cfg.Idle {
		t.Fatalf("tick 2: state = %v, want Idle", state.CurrentState)
	}
}

func TestStepCharacterLockedIgnoresIntents(t *testing.T) {
	state := &components.StateData{CurrentState: cfg.Kicking, PreviousState: cfg.Kicking}
	state.Lock.Arm(cfg.KickLockSeconds)

	// Intents during the committed window are dropped outright, not
	// buffered: the state must not change and no edge may appear.
	for i := 0; i < 4; i++ {
		stepCharacter(state, components.IntentPunch, testDelta)
		if state.CurrentState != cfg.Kicking {
			t.Fatalf("tick %d: state = %v, want Kicking", i+1, state.CurrentState)
		}
		if state.Transition().Entered {
			t.Fatalf("tick %d: dropped intent produced a transition edge", i+1)
		}
	}
}

func TestStepCharacterKickCommitment(t *testing.T) {
	// Full kick timeline at a fixed delta: the lock holds for exactly
	// KickLockSeconds of accumulated time, then the held movement intent
	// is accepted on the expiry tick itself.
	state := &components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.Idle}

	stepCharacter(state, components.IntentKick, testDelta)
	if state.CurrentState != cfg.Kicking {
		t.Fatalf("kick intent not accepted: %v", state.CurrentState)
	}

	// The dispatcher arms the lock when it plays the kick clip.
	state.Lock.Arm(cfg.KickLockSeconds)
	state.MarkDispatched()

	blockedTicks := int(cfg.KickLockSeconds/testDelta) - 1
	for i := 0; i < blockedTicks; i++ {
		stepCharacter(state, components.IntentMoveForward, testDelta)
		if state.CurrentState != cfg.Kicking {
			t.Fatalf("tick %d: commitment broken, state = %v", i+2, state.CurrentState)
		}
	}

	stepCharacter(state, components.IntentMoveForward, testDelta)
	if state.CurrentState != cfg.Running {
		t.Fatalf("expiry tick: state = %v, want Running", state.CurrentState)
	}
	if state.Lock.Active {
		t.Fatal("lock still active after expiry")
	}
}

func TestStepCharacterPanicsOnLockStateDesync(t *testing.T) {
	prev := cfg.Debug.StrictInvariants
	cfg.Debug.StrictInvariants = true
	t.Cleanup(func() { cfg.Debug.StrictInvariants = prev })

	// A lock may only ever be held by an attack state. Seeing one on a
	// movement state means some other writer armed it; that must die loudly
	// in debug builds instead of silently freezing the character.
	state := &components.StateData{CurrentState: cfg.Running, PreviousState: cfg.Running}
	state.Lock.Arm(0.5)

	defer func() {
		if recover() == nil {
			t.Fatal("lock held outside an attack state did not panic")
		}
	}()
	stepCharacter(state, components.IntentIdle, testDelta)
}

func TestStepCharacterExpiryWithNoIntentGoesIdle(t *testing.T) {
	state := &components.StateData{CurrentState: cfg.Punching, PreviousState: cfg.Punching}
	state.Lock.Arm(testDelta)

	stepCharacter(state, components.IntentIdle, testDelta)
	if state.CurrentState != cfg.Idle {
		t.Fatalf("state = %v, want Idle after lock expiry", state.CurrentState)
	}
}

func TestUpdatePlayersOnlyDrivesPlayers(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	inputEntry := e.World.Entry(e.World.Create(components.Input))
	input := components.Input.Get(inputEntry)
	input.Current[cfg.ActionPunch] = true

	player := archetypes.Player.Spawn(e)
	components.State.SetValue(player, components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.Idle})

	dummy := archetypes.Dummy.Spawn(e)
	components.State.SetValue(dummy, components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.Idle})

	UpdatePlayers(e)

	if got := components.State.Get(player).CurrentState; got != cfg.Punching {
		t.Fatalf("player state = %v, want Punching", got)
	}
	if got := components.State.Get(dummy).CurrentState; got != cfg.Idle {
		t.Fatalf("dummy state = %v, want Idle (dummies receive no intents)", got)
	}
}
