package game

import (
	"log/slog"
	"time"

	"forest-explorer/internal/config"
	"forest-explorer/internal/graphics"
	"forest-explorer/internal/graphics/renderables/ground"
	"forest-explorer/internal/graphics/renderables/wireframe"
	"forest-explorer/internal/graphics/renderer"
	"forest-explorer/internal/input"
	"forest-explorer/internal/profiling"
	"forest-explorer/internal/terrain"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Session owns one running terrain view: camera, streamer and renderer.
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Ground   *ground.Ground
	Borders  *wireframe.ChunkBorders
	Camera   *graphics.Camera
	Streamer *terrain.ChunkStreamer
	Settings config.Settings

	// Paused is true while the cursor is released. The camera stops
	// reporting a viewpoint, so streaming pauses too.
	Paused bool
	// FollowGround keeps the camera at a fixed clearance above the surface.
	FollowGround bool

	log              *slog.Logger
	frames           int
	lastFPSCheckTime time.Time
}

// NewSession builds the renderer and the streamer and performs the initial
// chunk load around the origin. The GL context must be current.
func NewSession(window *glfw.Window, settings config.Settings, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	field, err := settings.Terrain.HeightField()
	if err != nil {
		return nil, err
	}
	cfg := settings.Terrain.Config()

	width, height := window.GetSize()
	cam := graphics.NewCamera(width, height, settings.Window.FOV)

	groundRenderer := ground.NewGround(log)
	s := &Session{
		Window:           window,
		Ground:           groundRenderer,
		Camera:           cam,
		Settings:         settings,
		FollowGround:     true,
		log:              log,
		lastFPSCheckTime: time.Now(),
	}
	s.Borders = wireframe.NewChunkBorders(cfg, func() terrain.ChunkCoord { return s.Streamer.CameraChunk() })

	r, err := renderer.NewRenderer(cam, groundRenderer, s.Borders)
	if err != nil {
		return nil, err
	}
	s.Renderer = r

	s.Streamer, err = terrain.NewChunkStreamer(cfg, field, groundRenderer, log)
	if err != nil {
		r.Dispose()
		return nil, err
	}
	if _, err := s.Streamer.Start(); err != nil {
		s.Cleanup()
		return nil, err
	}

	cam.Position[1] = s.Streamer.HeightAt(0, 0) + settings.Controls.GroundClearance
	fbW, fbH := window.GetFramebufferSize()
	r.UpdateViewport(fbW, fbH)

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return s, nil
}

// Cleanup releases every chunk and then the GL resources.
func (s *Session) Cleanup() {
	if s.Streamer != nil {
		s.Streamer.Close()
	}
	if s.Renderer != nil {
		s.Renderer.Dispose()
	}
}

// Update advances the camera from input and runs one streaming pass.
func (s *Session) Update(dt float64, im *input.InputManager) {
	s.handleInputActions(im)

	if !s.Paused {
		stop := profiling.Track("camera.Update")
		Steer(s.Camera, im, s.Settings.Controls, dt)
		surface := s.Streamer.HeightAt(s.Camera.Position.X(), s.Camera.Position.Z())
		if s.FollowGround {
			s.Camera.Position[1] = surface + s.Settings.Controls.GroundClearance
		} else {
			ClampToGround(s.Camera, surface, s.Settings.Controls.GroundClearance)
		}
		stop()
	}

	// a paused camera reports no viewpoint and the pass is skipped
	stats, err := s.Streamer.Tick(s.Camera)
	if err != nil {
		s.log.Error("terrain update failed", "error", err)
		return
	}
	if stats.Loaded > 0 || stats.Evicted > 0 {
		s.log.Debug("terrain tick",
			"center", stats.Center,
			"loaded", stats.Loaded,
			"evicted", stats.Evicted,
			"elapsed", stats.Duration)
	}
}

func (s *Session) Render(dt float64) time.Duration {
	renderStart := time.Now()
	s.Renderer.Render(dt)
	renderDur := time.Since(renderStart)

	s.frames++
	if time.Since(s.lastFPSCheckTime) >= time.Second {
		drawn, culled := s.Ground.Stats()
		s.log.Debug("frame stats",
			"fps", s.frames,
			"chunks", s.Streamer.Registry().Len(),
			"drawn", drawn,
			"culled", culled,
			"camera", s.Camera.Position)
		s.frames = 0
		s.lastFPSCheckTime = time.Now()
	}
	return renderDur
}

func (s *Session) SetPaused(paused bool) {
	s.Paused = paused
	s.Camera.Active = !paused
	if s.Paused {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		w, h := s.Window.GetSize()
		s.Window.SetCursorPos(float64(w)/2, float64(h)/2)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
}

func (s *Session) handleInputActions(im *input.InputManager) {
	if im.JustPressed(input.ActionReleaseCursor) {
		s.SetPaused(!s.Paused)
		im.ResetCursor()
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		s.Ground.Wireframe = !s.Ground.Wireframe
		s.Borders.Enabled = s.Ground.Wireframe
	}
	if im.JustPressed(input.ActionToggleFollowGround) {
		s.FollowGround = !s.FollowGround
		s.log.Info("camera mode changed", "follow_ground", s.FollowGround)
	}
	if im.JustPressed(input.ActionQuit) {
		s.Window.SetShouldClose(true)
	}
}

// RefreshRender repaints during a window resize.
func (s *Session) RefreshRender() {
	s.Renderer.Render(0.016)
	s.Window.SwapBuffers()
}
