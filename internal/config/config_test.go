package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"forest-explorer/internal/terrain"
)

func TestDefaultMatchesTerrainDefaults(t *testing.T) {
	s := Default()
	if got := s.Terrain.Config(); got != terrain.DefaultConfig() {
		t.Errorf("terrain config = %+v, want %+v", got, terrain.DefaultConfig())
	}
	if s.Window.Width != 1280 || s.Window.Height != 720 || s.Window.Title != "Procedural Forest Explorer" {
		t.Errorf("window = %+v", s.Window)
	}
	if s.Level() != slog.LevelInfo {
		t.Errorf("level = %v", s.Level())
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	for _, doc := range []string{"", "{}\n", "# nothing here\n"} {
		s, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("Parse(%q): %v", doc, err)
		}
		if s != Default() {
			t.Errorf("Parse(%q) = %+v, want defaults", doc, s)
		}
	}
}

func TestParseOverridesPartially(t *testing.T) {
	doc := `
terrain:
  render_distance: 5
  noise: simplex
  seed: 7
controls:
  move_speed: 12.5
log_level: debug
`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Terrain.RenderDistance != 5 || s.Terrain.Noise != "simplex" || s.Terrain.Seed != 7 {
		t.Errorf("terrain = %+v", s.Terrain)
	}
	// untouched keys keep their defaults
	if s.Terrain.ChunkSize != 32 || s.Terrain.Resolution != 32 {
		t.Errorf("defaults lost: %+v", s.Terrain)
	}
	if s.Controls.MoveSpeed != 12.5 || s.Controls.MouseSensitivity != 0.002 {
		t.Errorf("controls = %+v", s.Controls)
	}
	if s.Level() != slog.LevelDebug {
		t.Errorf("level = %v", s.Level())
	}

	f, err := s.Terrain.HeightField()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.(*terrain.SimplexField); !ok {
		t.Errorf("HeightField = %T, want *terrain.SimplexField", f)
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"negative render distance": "terrain:\n  render_distance: -1\n",
		"zero chunk size":          "terrain:\n  chunk_size: 0\n",
		"unknown noise":            "terrain:\n  noise: worley\n",
		"unknown key":              "terrain:\n  chunk_sise: 16\n",
		"wrong type":               "window:\n  width: wide\n",
		"bad log level":            "log_level: loud\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("err = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestParseRejectsNonFiniteNoiseScale(t *testing.T) {
	_, err := Parse([]byte("terrain:\n  noise_scale: .inf\n"))
	if err == nil {
		t.Fatal("infinite noise scale should be rejected")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("fps_limit: 30\nwindow:\n  fov: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.FPSLimit != 30 || s.Window.FOV != 90 {
		t.Errorf("loaded = %+v", s)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}
