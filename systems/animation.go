package systems

import (
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateAnimations is the edge-triggered clip dispatcher. For a character
// that entered a new state this tick it selects the clip, blend and speed,
// arms the action lock for attacks, and queues the attack sound cue -
// exactly once per genuine transition. Sustained states only advance
// playback.
//
// A dispatch against an unresolved rig is skipped and retried next tick:
// the transition is only marked dispatched on success, so the edge stays
// armed across the asset-loading race at scene spawn.
func UpdateAnimations(e *ecs.ECS) {
	delta := TickDelta(e)

	components.State.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Animation) {
			return
		}
		state := components.State.Get(entry)
		anim := components.Animation.Get(entry)

		if t := state.Transition(); t.Entered {
			if err := dispatchClip(e, state, anim, t.State); err != nil {
				logger.Debug("clip dispatch deferred",
					zap.Stringer("state", t.State),
					zap.Error(err),
				)
			} else {
				state.MarkDispatched()
			}
		}

		anim.Advance(delta)
	})
}

func dispatchClip(e *ecs.ECS, state *components.StateData, anim *components.AnimationData, next cfg.StateID) error {
	switch next {
	case cfg.Punching:
		if err := anim.Play(next, cfg.BlendInSeconds, cfg.AttackClipSpeed, false); err != nil {
			return err
		}
		state.Lock.Arm(cfg.PunchLockSeconds)
		QueueSFX(e, cfg.SoundPunch)

	case cfg.Kicking:
		if err := anim.Play(next, cfg.BlendInSeconds, cfg.AttackClipSpeed, false); err != nil {
			return err
		}
		state.Lock.Arm(cfg.KickLockSeconds)
		QueueSFX(e, cfg.SoundKick)

	default:
		if err := anim.Play(next, cfg.BlendInSeconds, cfg.NormalClipSpeed, true); err != nil {
			return err
		}
	}
	return nil
}
