package config

// ClipDef describes one animation clip: a frame range within a character's
// sprite sheet and its base playback rate in frames per second. Playback
// speed multipliers and looping are decided per state by the dispatcher,
// not baked into the clip.
type ClipDef struct {
	First int
	Last  int
	Step  int
	FPS   float64
}

// CharacterClips maps a character key (e.g., "ninja") to its set of clip
// definitions. Every state a character can enter must have a clip here;
// the rig loader treats a missing entry as a configuration error.
var CharacterClips = map[string]map[StateID]ClipDef{
	"ninja": {
		Idle:             {First: 0, Last: 7, Step: 1, FPS: 10},
		Running:          {First: 0, Last: 7, Step: 1, FPS: 12},
		RunningBackwards: {First: 0, Last: 7, Step: 1, FPS: 10},
		Punching:         {First: 0, Last: 5, Step: 1, FPS: 14},
		Kicking:          {First: 0, Last: 8, Step: 1, FPS: 12},
	},
	"dummy": {
		Idle: {First: 0, Last: 7, Step: 1, FPS: 8},
	},
}
