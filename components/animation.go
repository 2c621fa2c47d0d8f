package components

import (
	"errors"
	"fmt"

	"github.com/automoto/dojoduel/assets/animations"
	"github.com/automoto/dojoduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ErrRigNotReady is returned by Play while the character's rig has not
// resolved yet. The dispatcher treats it as recoverable and retries on the
// next tick.
var ErrRigNotReady = errors.New("animation rig not resolved")

// AnimationData is the playback side of a character's rig. Clips and sprite
// sheets are attached asynchronously once the asset library has decoded
// them; until then Ready reports false and play requests fail.
type AnimationData struct {
	Clips        map[config.StateID]*animations.Clip
	SpriteSheets map[config.StateID]*ebiten.Image
	FrameWidth   int
	FrameHeight  int

	CurrentState  config.StateID
	CurrentClip   *animations.Clip
	PreviousState config.StateID
	PreviousClip  *animations.Clip // still drawn while blending out

	// Crossfade weight from the previous clip to the current one.
	Blend       *gween.Tween // nil once the blend has settled
	BlendWeight float32
}

// Ready reports whether the rig has been resolved.
func (a *AnimationData) Ready() bool {
	return a != nil && len(a.Clips) > 0
}

// Play switches playback to the clip bound to state, blending in over
// blendSeconds and scaling the clip's base frame rate by speed. Requesting
// the clip that is already playing is a no-op.
func (a *AnimationData) Play(state config.StateID, blendSeconds, speed float64, looping bool) error {
	if !a.Ready() {
		return ErrRigNotReady
	}
	clip, ok := a.Clips[state]
	if !ok {
		return fmt.Errorf("no clip for state %s", state)
	}
	if clip == a.CurrentClip {
		return nil
	}

	a.PreviousClip = a.CurrentClip
	a.PreviousState = a.CurrentState
	a.CurrentClip = clip
	a.CurrentState = state
	clip.Restart()
	clip.Speed = speed
	clip.Looping = looping

	a.Blend = gween.New(0, 1, float32(blendSeconds), ease.Linear)
	a.BlendWeight = 0
	if a.PreviousClip == nil {
		// Nothing to blend from on the very first clip.
		a.Blend = nil
		a.BlendWeight = 1
	}
	return nil
}

// Advance steps the active clips and the crossfade by delta seconds.
func (a *AnimationData) Advance(delta float64) {
	if a.CurrentClip != nil {
		a.CurrentClip.Update(delta)
	}
	if a.PreviousClip != nil {
		a.PreviousClip.Update(delta)
	}
	if a.Blend != nil {
		w, done := a.Blend.Update(float32(delta))
		a.BlendWeight = w
		if done {
			a.Blend = nil
			a.PreviousClip = nil
		}
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
