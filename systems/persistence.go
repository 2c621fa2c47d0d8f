package systems

import (
	"encoding/json"

	"github.com/automoto/dojoduel/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk.
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
// Persistence is best effort: every failure degrades to defaults.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dojoduel",
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result means no saved
// settings exist and defaults should be used.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logger.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		logger.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live audio and window state and writes
// it to disk. Called at shutdown so the next run starts where this one left
// off.
func SaveCurrentSettings() {
	_ = SaveSettings(currentSettings())
}

func currentSettings() *SavedSettings {
	return &SavedSettings{
		SFXVolume:  globalSFXVolume,
		Muted:      globalSFXVolume <= 0,
		Fullscreen: ebiten.IsFullscreen(),
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS
// reference. Used during startup before any scene exists; the first
// audio singleton picks the volume up.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSFXVolume = saved.SFXVolume
	if saved.Muted {
		globalSFXVolume = 0
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
