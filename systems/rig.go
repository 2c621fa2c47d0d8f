package systems

import (
	"github.com/automoto/dojoduel/assets"
	"github.com/automoto/dojoduel/assets/animations"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRigs attaches decoded rigs to the entities waiting on them. Rig
// decoding happens off the main goroutine in the asset library; all ECS
// mutation stays on the tick, so a character's AnimationData flips from
// empty to ready between two ticks and the dispatcher's retry picks it up.
func UpdateRigs(e *ecs.ECS) {
	components.Rig.Each(e.World, func(entry *donburi.Entry) {
		ref := components.Rig.Get(entry)
		if ref.Resolved {
			return
		}
		rig, ok := assets.Characters.Rig(ref.Key)
		if !ok {
			return
		}

		anim := components.Animation.Get(entry)
		anim.Clips = buildClips(ref.Key)
		anim.SpriteSheets = rig.Sheets
		anim.FrameWidth = rig.FrameWidth
		anim.FrameHeight = rig.FrameHeight

		ref.AttachPoints = rig.AttachPoints
		ref.Resolved = true
	})
}

func buildClips(key string) map[cfg.StateID]*animations.Clip {
	defs := cfg.CharacterClips[key]
	clips := make(map[cfg.StateID]*animations.Clip, len(defs))
	for state, def := range defs {
		clips[state] = animations.New(def.First, def.Last, def.Step, def.FPS)
	}
	return clips
}
