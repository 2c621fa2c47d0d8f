package systems

import (
	"testing"

	"github.com/automoto/dojoduel/archetypes"
	"github.com/automoto/dojoduel/assets/animations"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testClips() map[cfg.StateID]*animations.Clip {
	clips := make(map[cfg.StateID]*animations.Clip)
	for _, s := range []cfg.StateID{cfg.Idle, cfg.Punching, cfg.Kicking, cfg.Running, cfg.RunningBackwards} {
		clips[s] = animations.New(0, 7, 1, 12)
	}
	return clips
}

func spawnAnimatedFighter(e *ecs.ECS, ready bool) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)
	components.State.SetValue(entry, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	if ready {
		components.Animation.Get(entry).Clips = testClips()
	}
	return entry
}

func TestDispatchRetriesUntilRigResolves(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := spawnAnimatedFighter(e, false)

	// Three ticks against an unresolved rig: the spawn transition must
	// stay pending the whole time.
	for i := 0; i < 3; i++ {
		UpdateAnimations(e)
		state := components.State.Get(entry)
		if !state.Transition().Entered {
			t.Fatalf("tick %d: pending transition consumed before the rig resolved", i+1)
		}
	}

	// Rig lands between ticks; the next dispatch succeeds.
	components.Animation.Get(entry).Clips = testClips()
	UpdateAnimations(e)

	state := components.State.Get(entry)
	if state.Transition().Entered {
		t.Fatal("transition still pending after successful dispatch")
	}
	anim := components.Animation.Get(entry)
	if anim.CurrentClip == nil || anim.CurrentState != cfg.Idle {
		t.Fatalf("idle clip not playing after dispatch: %+v", anim.CurrentState)
	}
}

func TestDispatchHappensOncePerTransition(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := spawnAnimatedFighter(e, true)

	UpdateAnimations(e)

	anim := components.Animation.Get(entry)
	idleClip := anim.CurrentClip
	idleClip.Update(0.2) // move playback off the first frame
	frame := idleClip.Frame()
	if frame == 0 {
		t.Fatal("clip did not advance, cannot observe a restart")
	}

	// Sustained idle across further ticks must not restart the clip.
	UpdateAnimations(e)
	UpdateAnimations(e)
	if anim.CurrentClip != idleClip {
		t.Fatal("sustained state switched clips")
	}
	if idleClip.Frame() < frame {
		t.Fatal("sustained state restarted the clip")
	}
}

func TestAttackDispatchArmsLockAndQueuesCue(t *testing.T) {
	tests := []struct {
		name  string
		state cfg.StateID
		lock  float64
		sound cfg.SoundID
	}{
		{"punch", cfg.Punching, cfg.PunchLockSeconds, cfg.SoundPunch},
		{"kick", cfg.Kicking, cfg.KickLockSeconds, cfg.SoundKick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			entry := spawnAnimatedFighter(e, true)
			UpdateAnimations(e) // consume the spawn transition

			state := components.State.Get(entry)
			state.CurrentState = tt.state
			UpdateAnimations(e)

			if !state.Lock.Active || state.Lock.Remaining != tt.lock {
				t.Fatalf("lock = %+v, want %v seconds armed", state.Lock, tt.lock)
			}

			anim := components.Animation.Get(entry)
			if anim.CurrentState != tt.state {
				t.Fatalf("playing %v, want %v", anim.CurrentState, tt.state)
			}
			if anim.CurrentClip.Looping {
				t.Fatal("attack clips must not loop")
			}
			if anim.CurrentClip.Speed != cfg.AttackClipSpeed {
				t.Fatalf("clip speed = %v, want %v", anim.CurrentClip.Speed, cfg.AttackClipSpeed)
			}

			audioEntry, ok := components.Audio.First(e.World)
			if !ok {
				t.Fatal("no audio queue created")
			}
			pending := components.Audio.Get(audioEntry).PendingSFX
			if len(pending) != 1 || pending[0] != tt.sound {
				t.Fatalf("pending cues = %v, want [%v]", pending, tt.sound)
			}
		})
	}
}

func TestMovementDispatchLoopsAtNormalSpeed(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := spawnAnimatedFighter(e, true)
	UpdateAnimations(e)

	state := components.State.Get(entry)
	state.CurrentState = cfg.Running
	UpdateAnimations(e)

	anim := components.Animation.Get(entry)
	if !anim.CurrentClip.Looping {
		t.Fatal("movement clips must loop")
	}
	if anim.CurrentClip.Speed != cfg.NormalClipSpeed {
		t.Fatalf("clip speed = %v, want %v", anim.CurrentClip.Speed, cfg.NormalClipSpeed)
	}
	if state.Lock.Active {
		t.Fatal("movement dispatch must not arm the action lock")
	}
}
