package components

import (
	"github.com/automoto/dojoduel/assets"
	"github.com/yohamta/donburi"
)

// RigRef names the character rig an entity is waiting on. The rig system
// swaps it for a populated AnimationData once the asset library resolves;
// until then the animation dispatcher keeps retrying.
type RigRef struct {
	Key          string
	AttachPoints assets.AttachPoints
	Resolved     bool
}

var Rig = donburi.NewComponentType[RigRef]()
