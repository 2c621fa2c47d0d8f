package main

import (
	"image"

	"github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/logger"
	"github.com/automoto/dojoduel/scenes"
	"github.com/automoto/dojoduel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	overrides, err := config.LoadOverrides("config.yaml")
	if err != nil {
		logger.Warn("config overrides ignored", zap.Error(err))
	}

	level, logFile := "info", "dojoduel.log"
	if overrides != nil && overrides.Log != nil {
		if overrides.Log.Level != "" {
			level = overrides.Log.Level
		}
		if overrides.Log.File != "" {
			logFile = overrides.Log.File
		}
	}
	logger.Init(level, logFile)
	defer logger.Sync()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("persistence unavailable, using default settings", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	err = ebiten.RunGame(NewGame())
	systems.SaveCurrentSettings()
	if err != nil {
		logger.Panic("game loop exited", zap.Error(err))
	}
}
