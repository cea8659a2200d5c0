package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"forest-explorer/internal/config"
	"forest-explorer/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Int64("seed", 0, "terrain seed override (0 keeps the configured seed)")
	renderDistance := flag.Int("render-distance", -1, "render distance override in chunks")
	noise := flag.String("noise", "", "noise backend override: perlin, simplex or flat")
	logLevel := flag.String("log-level", "", "log level override: debug, info, warn or error")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			slog.Error("load settings", "error", err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		settings.Terrain.Seed = *seed
	}
	if *renderDistance >= 0 {
		settings.Terrain.RenderDistance = int32(*renderDistance)
	}
	if *noise != "" {
		settings.Terrain.Noise = *noise
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	if err := settings.Terrain.Config().Validate(); err != nil {
		slog.Error("invalid terrain settings", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: settings.Level()}))

	if err := glfw.Init(); err != nil {
		log.Error("init glfw", "error", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(settings.Window)
	if err != nil {
		log.Error("create window", "error", err)
		os.Exit(1)
	}
	defer window.Destroy()

	app, err := game.NewApp(window, settings, log)
	if err != nil {
		log.Error("start session", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	log.Info("controls: WASD move, Space/Ctrl up/down, Shift sprint, Esc release cursor, F wireframe, G follow ground, Q quit")
	app.Run()
}
