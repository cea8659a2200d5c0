package game

import (
	"forest-explorer/internal/config"
	"forest-explorer/internal/graphics"
	"forest-explorer/internal/input"
)

// Steer applies one frame of keyboard and mouse input to the camera.
func Steer(cam *graphics.Camera, im *input.InputManager, c config.ControlSettings, dt float64) {
	dx, dy := im.ConsumeMouseDelta()
	cam.Look(dx, dy, c.MouseSensitivity)

	var forward, right, up float32
	if im.IsActive(input.ActionMoveForward) {
		forward++
	}
	if im.IsActive(input.ActionMoveBackward) {
		forward--
	}
	if im.IsActive(input.ActionMoveRight) {
		right++
	}
	if im.IsActive(input.ActionMoveLeft) {
		right--
	}
	if im.IsActive(input.ActionAscend) {
		up++
	}
	if im.IsActive(input.ActionDescend) {
		up--
	}

	speed := c.MoveSpeed
	if im.IsActive(input.ActionSprint) {
		speed *= c.SprintMultiplier
	}
	cam.Move(forward, right, up, speed*float32(dt))
}

// ClampToGround lifts the camera so it stays clearance above surface.
// It reports whether the camera was moved.
func ClampToGround(cam *graphics.Camera, surface, clearance float32) bool {
	minY := surface + clearance
	if cam.Position.Y() >= minY {
		return false
	}
	cam.Position[1] = minY
	return true
}
