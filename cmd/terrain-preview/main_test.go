package main

import (
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(cfgPath, []byte("terrain:\n  render_distance: 1\n  resolution: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")
	log := slog.New(slog.DiscardHandler)

	if err := run(log, cfgPath, out, 5, 20, 0, 2); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// 3x3 chunks of 4 cells at scale 2, plus the caption strip
	if b := img.Bounds(); b.Dx() < 24 || b.Dy() <= 24 {
		t.Errorf("image bounds %v", b)
	}
}
