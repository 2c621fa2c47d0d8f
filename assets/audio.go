package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a
// player. Call at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a fresh player for the sound at path, decoding and
// caching it on first use.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[path]), nil
}
