package game

import (
	"forest-explorer/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow creates the window and makes its GL 4.1 core context current.
// glfw.Init must have been called on the main thread.
func SetupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	// Disable V-Sync; the FPS limiter paces frames
	glfw.SwapInterval(0)

	return window, nil
}
