package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides mirrors the optional config.yaml. Only the fields present in
// the file are applied; everything else keeps its compiled-in value. The
// action lock durations and clip parameters are deliberately absent: those
// are design constants, not tuning knobs.
type Overrides struct {
	Window *struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Arena *struct {
		HalfWidth float64 `yaml:"half_width"`
	} `yaml:"arena"`
	Player *struct {
		ForwardSpeed  float64 `yaml:"forward_speed"`
		BackwardSpeed float64 `yaml:"backward_speed"`
	} `yaml:"player"`
	Log *struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Debug *struct {
		DrawHitboxes bool `yaml:"draw_hitboxes"`
	} `yaml:"debug"`
}

// LoadOverrides reads the yaml file at path and applies it over the
// compiled-in defaults. A missing file is not an error.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if o.Window != nil {
		if o.Window.Width > 0 {
			C.Width = o.Window.Width
		}
		if o.Window.Height > 0 {
			C.Height = o.Window.Height
		}
		if o.Window.Title != "" {
			C.Title = o.Window.Title
		}
	}
	if o.Arena != nil && o.Arena.HalfWidth > 0 {
		Arena.HalfWidth = o.Arena.HalfWidth
	}
	if o.Player != nil {
		if o.Player.ForwardSpeed > 0 {
			Player.ForwardSpeed = o.Player.ForwardSpeed
		}
		if o.Player.BackwardSpeed > 0 {
			Player.BackwardSpeed = o.Player.BackwardSpeed
		}
	}
	if o.Debug != nil {
		Debug.DrawHitboxes = o.Debug.DrawHitboxes
	}

	return &o, nil
}
