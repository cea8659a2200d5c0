package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes window events to the input manager and the
// session.
func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	im.Attach(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.session.Renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Release the cursor when the window loses focus
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused && !app.session.Paused {
			app.session.SetPaused(true)
			im.ResetCursor()
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
