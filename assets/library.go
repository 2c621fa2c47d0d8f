package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/dojoduel/config"
	"github.com/automoto/dojoduel/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Rig is a character's fully loaded animation resource set: one sprite
// sheet per state plus the attachment points derived from the rig's joint
// names. Rigs are built off the main goroutine and published whole; a
// character entity exists before its rig does, which is exactly the
// asset-loading race the animation dispatcher tolerates.
type Rig struct {
	Key          string
	Sheets       map[config.StateID]*ebiten.Image
	FrameWidth   int
	FrameHeight  int
	AttachPoints AttachPoints
}

// rigManifest is the optional sidecar file next to a character's sheets.
type rigManifest struct {
	Joints []string `yaml:"joints"`
}

// Library hands out decoded rigs by character key. LoadAsync decodes in a
// background goroutine; Rig returns ok=false until the decode has finished.
type Library struct {
	mu   sync.Mutex
	rigs map[string]*Rig
}

// Characters is the process-wide rig library.
var Characters = NewLibrary()

func NewLibrary() *Library {
	return &Library{rigs: make(map[string]*Rig)}
}

// LoadAsync starts decoding the rig for key from dir. Sheets that are
// missing on disk are skipped with a warning; the rig still resolves so
// state logic and tests run without art.
func (l *Library) LoadAsync(key, dir string, frameWidth, frameHeight int) {
	go func() {
		rig, err := loadRig(key, dir, frameWidth, frameHeight)
		if err != nil {
			logger.Warn("rig load failed", zap.String("character", key), zap.Error(err))
			return
		}
		l.mu.Lock()
		l.rigs[key] = rig
		l.mu.Unlock()
		logger.Info("rig resolved", zap.String("character", key), zap.Int("sheets", len(rig.Sheets)))
	}()
}

// Rig returns the decoded rig for key, or ok=false while it is still
// loading (or failed to load).
func (l *Library) Rig(key string) (*Rig, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rig, ok := l.rigs[key]
	return rig, ok
}

// Publish inserts a pre-built rig. Used by tests and by tools that build
// rigs without touching the filesystem.
func (l *Library) Publish(rig *Rig) {
	l.mu.Lock()
	l.rigs[rig.Key] = rig
	l.mu.Unlock()
}

func loadRig(key, dir string, frameWidth, frameHeight int) (*Rig, error) {
	defs, ok := config.CharacterClips[key]
	if !ok {
		return nil, fmt.Errorf("no clip definitions for character %q", key)
	}

	rig := &Rig{
		Key:         key,
		Sheets:      make(map[config.StateID]*ebiten.Image, len(defs)),
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
	}

	for state := range defs {
		path := filepath.Join(dir, state.String()+".png")
		img, err := loadImage(path)
		if err != nil {
			logger.Warn("sprite sheet unavailable", zap.String("path", path), zap.Error(err))
			continue
		}
		rig.Sheets[state] = img
	}

	joints := loadJointNames(filepath.Join(dir, "rig.yaml"))
	rig.AttachPoints = BuildAttachPoints(joints, config.Player.CollisionWidth, config.Player.CollisionHeight)

	return rig, nil
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// loadJointNames reads the optional rig manifest. No manifest means no
// joint list, which BuildAttachPoints handles with defaults.
func loadJointNames(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var m rigManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		logger.Warn("bad rig manifest", zap.String("path", path), zap.Error(err))
		return nil
	}
	return m.Joints
}
