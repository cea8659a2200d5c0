package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical control, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionAscend
	ActionDescend
	ActionSprint
	ActionReleaseCursor
	ActionToggleWireframe
	ActionToggleFollowGround
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to actions and tracks per-frame edges.
// Key events arrive on the GLFW callback; queries happen in the frame loop.
type InputManager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// accumulated cursor motion since the last ConsumeMouseDelta
	mouseDX, mouseDY float64
	lastX, lastY     float64
	haveCursor       bool
}

// NewInputManager creates an InputManager with the default fly bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionAscend)
	im.BindKey(glfw.KeyLeftControl, ActionDescend)
	im.BindKey(glfw.KeyLeftShift, ActionSprint)
	im.BindKey(glfw.KeyEscape, ActionReleaseCursor)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyG, ActionToggleFollowGround)
	im.BindKey(glfw.KeyQ, ActionQuit)

	return im
}

// BindKey binds a physical key to an action. Several keys may share one.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent updates action state from a raw key event.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, ok := im.keyToActions[key]
	if !ok {
		return
	}
	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// HandleCursorPos accumulates motion from absolute cursor positions. The
// first sample after a reset only records the position.
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.haveCursor {
		im.mouseDX += x - im.lastX
		im.mouseDY += y - im.lastY
	}
	im.lastX, im.lastY = x, y
	im.haveCursor = true
}

// ResetCursor forgets the last cursor position, e.g. after the cursor is
// recaptured, so the next sample does not produce a jump.
func (im *InputManager) ResetCursor() {
	im.mu.Lock()
	im.haveCursor = false
	im.mouseDX, im.mouseDY = 0, 0
	im.mu.Unlock()
}

// ConsumeMouseDelta returns and clears the accumulated cursor motion.
func (im *InputManager) ConsumeMouseDelta() (dx, dy float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	dx, dy = im.mouseDX, im.mouseDY
	im.mouseDX, im.mouseDY = 0, 0
	return dx, dy
}

// Attach installs the key and cursor callbacks on window.
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})
}

// PostUpdate must be called at the end of each frame to reset edge flags.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive reports whether the action is held down.
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed reports whether the action went down during this frame.
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}
