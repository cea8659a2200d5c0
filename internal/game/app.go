package game

import (
	"log/slog"
	"time"

	"forest-explorer/internal/config"
	"forest-explorer/internal/input"
	"forest-explorer/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// App drives the frame loop for a single session.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	session      *Session
	log          *slog.Logger

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp starts a session on window and wires the input callbacks.
func NewApp(window *glfw.Window, settings config.Settings, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	session, err := NewSession(window, settings, log)
	if err != nil {
		return nil, err
	}
	a := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		session:      session,
		log:          log,
		fpsLimiter:   NewFPSLimiter(settings.FPSLimit),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(a)
	return a, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.session.Update(dt, a.inputManager)
	a.session.Render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(start) - profiling.SumWithPrefix("glfw."); d > slowFrame {
		a.log.Warn("slow frame", "elapsed", d, "top", profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(a.session.Paused)
}

// Close ends the session and frees its resources.
func (a *App) Close() {
	a.session.Cleanup()
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.session.RefreshRender()
}
