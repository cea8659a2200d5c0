package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the viewer configuration as read from a YAML file.
type Settings struct {
	Terrain  TerrainSettings `yaml:"terrain"`
	Window   WindowSettings  `yaml:"window"`
	Controls ControlSettings `yaml:"controls"`
	FPSLimit int             `yaml:"fps_limit"` // 0 disables the limiter
	LogLevel string          `yaml:"log_level"`
}

type WindowSettings struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	FOV    float32 `yaml:"fov"` // vertical, degrees
}

type ControlSettings struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // radians per pixel
	MoveSpeed        float32 `yaml:"move_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	// GroundClearance keeps the camera this far above the surface.
	GroundClearance float32 `yaml:"ground_clearance"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Terrain: DefaultTerrain(),
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "Procedural Forest Explorer",
			FOV:    75,
		},
		Controls: ControlSettings{
			MouseSensitivity: 0.002,
			MoveSpeed:        5,
			SprintMultiplier: 2,
			GroundClearance:  2.5,
		},
		FPSLimit: 120,
		LogLevel: "info",
	}
}

var settingsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("settings.schema.json", schemaJSON)
})

// Load reads a YAML settings file. Keys missing from the file keep their
// default values. The document is checked against the embedded schema before
// it is decoded.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := Parse(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML settings document.
func Parse(raw []byte) (Settings, error) {
	s := Default()
	if err := validate(raw); err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	if err := s.Terrain.Config().Validate(); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s, nil
}

// validate converts the YAML document to JSON values and runs the schema
// over them.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	schema, err := settingsSchema()
	if err != nil {
		return fmt.Errorf("settings schema: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Level maps LogLevel to a slog level, falling back to info.
func (s Settings) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
