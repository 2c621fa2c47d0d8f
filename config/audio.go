package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPunch
	SoundKick
	SoundHit
)

func (s SoundID) String() string {
	switch s {
	case SoundPunch:
		return "punch"
	case SoundKick:
		return "kick"
	case SoundHit:
		return "hit"
	default:
		return "none"
	}
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundPunch: "assets/audio/sfx/punch.wav",
			SoundKick:  "assets/audio/sfx/kick.wav",
			SoundHit:   "assets/audio/sfx/hit.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.25,
		},
	}
}
