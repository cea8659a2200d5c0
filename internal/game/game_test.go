package game

import (
	"math"
	"testing"

	"forest-explorer/internal/config"
	"forest-explorer/internal/graphics"
	"forest-explorer/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func TestFPSLimiterLimit(t *testing.T) {
	cases := []struct {
		limit, paused, running int
	}{
		{120, pausedFPS, 120},
		{0, pausedFPS, 0},
		{20, 20, 20},
	}
	for _, tc := range cases {
		f := NewFPSLimiter(tc.limit)
		if got := f.Limit(true); got != tc.paused {
			t.Errorf("limit %d paused = %d, want %d", tc.limit, got, tc.paused)
		}
		if got := f.Limit(false); got != tc.running {
			t.Errorf("limit %d running = %d, want %d", tc.limit, got, tc.running)
		}
	}
}

func TestFPSLimiterUnlimitedDoesNotBlock(t *testing.T) {
	f := NewFPSLimiter(0)
	for i := 0; i < 1000; i++ {
		f.Wait(false)
	}
	if !f.next.IsZero() {
		t.Error("unlimited limiter should not schedule frames")
	}
}

func TestSteerMovesAndSprints(t *testing.T) {
	controls := config.Default().Controls
	im := input.NewInputManager()
	cam := graphics.NewCamera(800, 600, 75)

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	Steer(cam, im, controls, 1)
	if math.Abs(float64(cam.Position.X()-controls.MoveSpeed)) > 1e-4 {
		t.Errorf("walk moved to %v, want x=%v", cam.Position, controls.MoveSpeed)
	}

	im.HandleKeyEvent(glfw.KeyLeftShift, glfw.Press)
	start := cam.Position
	Steer(cam, im, controls, 1)
	want := controls.MoveSpeed * controls.SprintMultiplier
	if got := cam.Position.Sub(start).Len(); math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("sprint moved %v, want %v", got, want)
	}
}

func TestSteerAppliesMouseLook(t *testing.T) {
	controls := config.Default().Controls
	im := input.NewInputManager()
	cam := graphics.NewCamera(800, 600, 75)

	im.HandleCursorPos(0, 0)
	im.HandleCursorPos(100, 0)
	Steer(cam, im, controls, 0)
	if math.Abs(float64(cam.Yaw-100*controls.MouseSensitivity)) > 1e-6 {
		t.Errorf("yaw = %v", cam.Yaw)
	}
	// delta was consumed
	Steer(cam, im, controls, 0)
	if math.Abs(float64(cam.Yaw-100*controls.MouseSensitivity)) > 1e-6 {
		t.Error("mouse delta applied twice")
	}
}

func TestClampToGround(t *testing.T) {
	cam := graphics.NewCamera(800, 600, 75)
	cam.Position = mgl32.Vec3{0, 1, 0}
	if !ClampToGround(cam, 3, 2.5) || cam.Position.Y() != 5.5 {
		t.Errorf("camera below ground not lifted: %v", cam.Position)
	}
	cam.Position[1] = 40
	if ClampToGround(cam, 3, 2.5) || cam.Position.Y() != 40 {
		t.Error("camera above ground should not move")
	}
}
