package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"forest-explorer/internal/config"
	"forest-explorer/internal/preview"
	"forest-explorer/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	out := flag.String("o", "terrain.png", "output PNG path")
	ticks := flag.Int("ticks", 16, "number of streaming passes to run")
	dx := flag.Float64("dx", 8, "viewpoint X movement per tick")
	dz := flag.Float64("dz", 0, "viewpoint Z movement per tick")
	scale := flag.Int("scale", 4, "output pixels per mesh cell")
	verbose := flag.Bool("v", false, "log every chunk load and eviction")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(log, *configPath, *out, *ticks, float32(*dx), float32(*dz), *scale); err != nil {
		log.Error("preview failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configPath, out string, ticks int, dx, dz float32, scale int) error {
	settings := config.Default()
	if configPath != "" {
		var err error
		if settings, err = config.Load(configPath); err != nil {
			return err
		}
	}
	field, err := settings.Terrain.HeightField()
	if err != nil {
		return err
	}
	cfg := settings.Terrain.Config()

	raster := preview.NewRaster(cfg.ChunkSize)
	streamer, err := terrain.NewChunkStreamer(cfg, field, raster, log)
	if err != nil {
		return err
	}
	if _, err := streamer.Start(); err != nil {
		return err
	}

	var loaded, evicted int
	pos := mgl32.Vec3{}
	for i := 0; i < ticks; i++ {
		pos = pos.Add(mgl32.Vec3{dx, 0, dz})
		pos[1] = streamer.HeightAt(pos.X(), pos.Z())
		stats, err := streamer.Advance(pos)
		if err != nil {
			return err
		}
		loaded += stats.Loaded
		evicted += stats.Evicted
		log.Info("tick",
			"n", i+1,
			"center", stats.Center,
			"loaded", stats.Loaded,
			"evicted", stats.Evicted,
			"elapsed", stats.Duration)
	}

	img, err := preview.Caption(raster.Image(scale),
		fmt.Sprintf("seed %d  center %v  chunks %d", cfg.Seed, streamer.CameraChunk(), streamer.Registry().Len()), 14)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info("preview written",
		"path", out,
		"ticks", ticks,
		"loaded", loaded,
		"evicted", evicted,
		"live", raster.Live())
	streamer.Close()
	return nil
}
