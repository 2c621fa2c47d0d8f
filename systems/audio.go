package systems

import (
	"sync"

	"github.com/automoto/dojoduel/assets"
	"github.com/automoto/dojoduel/components"
	cfg "github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once

	// Seeded from saved settings before any scene exists; the audio
	// singleton picks it up on creation.
	globalSFXVolume = cfg.Audio.DefaultSFXVol
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes every sound effect at startup to avoid decode lag
// on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			logger.Warn("sfx preload failed", zap.Stringer("sound", id), zap.Error(err))
		}
	}
}

// QueueSFX requests a sound cue. Fire-and-forget: gameplay systems never
// wait on, or hear back from, audio.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio drains the pending sound cues queued this tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, id := range audioData.PendingSFX {
		playSFX(id, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		// Missing audio files are tolerated the same way missing sprite
		// sheets are: the cue is dropped, gameplay is unaffected.
		logger.Debug("sfx unavailable", zap.Stringer("sound", id), zap.Error(err))
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.Get(entry).SFXVolume = globalSFXVolume
	}
	return components.Audio.Get(entry)
}
