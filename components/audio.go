package components

import (
	"github.com/automoto/dojoduel/config"
	"github.com/yohamta/donburi"
)

// AudioData queues fire-and-forget sound cue requests. Gameplay systems
// append; the audio system drains once per tick. Singleton component.
type AudioData struct {
	SFXVolume  float64
	PendingSFX []config.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
