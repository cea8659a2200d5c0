package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testCamera() *Camera {
	c := NewCamera(1280, 720, 75)
	c.Position = mgl32.Vec3{0, 10, 0}
	return c
}

func TestFrustumCullsBehindCamera(t *testing.T) {
	c := testCamera()
	f := NewFrustum(c.ProjectionMatrix().Mul4(c.ViewMatrix()))

	ahead := f.IntersectsAABB(mgl32.Vec3{20, 0, -5}, mgl32.Vec3{30, 15, 5})
	behind := f.IntersectsAABB(mgl32.Vec3{-30, 0, -5}, mgl32.Vec3{-20, 15, 5})
	tooFar := f.IntersectsAABB(mgl32.Vec3{2000, 0, -5}, mgl32.Vec3{2010, 15, 5})
	if !ahead {
		t.Error("box in front of the camera was culled")
	}
	if behind {
		t.Error("box behind the camera was not culled")
	}
	if tooFar {
		t.Error("box beyond the far plane was not culled")
	}
}

func TestFrustumKeepsBoxContainingCamera(t *testing.T) {
	c := testCamera()
	f := NewFrustum(c.ProjectionMatrix().Mul4(c.ViewMatrix()))
	if !f.IntersectsAABB(mgl32.Vec3{-16, 0, -16}, mgl32.Vec3{16, 20, 16}) {
		t.Error("chunk around the camera must stay visible")
	}
}

func TestFrustumPlanesAreNormalized(t *testing.T) {
	c := testCamera()
	f := NewFrustum(c.ProjectionMatrix().Mul4(c.ViewMatrix()))
	for i, p := range f {
		l := math.Sqrt(float64(p.A*p.A + p.B*p.B + p.C*p.C))
		if math.Abs(l-1) > 1e-4 {
			t.Errorf("plane %d normal length %v", i, l)
		}
	}
}

func TestCameraLookClampsPitch(t *testing.T) {
	c := testCamera()
	c.Look(0, -1e6, 0.002)
	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	c.Look(0, 1e6, 0.002)
	if c.Pitch != -MaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, -MaxPitch)
	}
}

func TestCameraMoveIsHorizontal(t *testing.T) {
	c := testCamera()
	c.Pitch = 1.0
	c.Move(1, 0, 0, 5)
	if c.Position.Y() != 10 {
		t.Errorf("forward motion changed height: %v", c.Position)
	}
	if math.Abs(float64(c.Position.X()-5)) > 1e-5 {
		t.Errorf("position = %v, want x=5", c.Position)
	}

	c.Move(0, 1, 0, 2)
	if math.Abs(float64(c.Position.Z()-2)) > 1e-5 {
		t.Errorf("strafe right moved to %v, want z=2", c.Position)
	}
	c.Move(0, 0, 0, 100)
	if math.Abs(float64(c.Position.Z()-2)) > 1e-5 {
		t.Error("zero direction should not move")
	}
}

func TestCameraViewpoint(t *testing.T) {
	c := testCamera()
	if p, ok := c.Viewpoint(); !ok || p != c.Position {
		t.Errorf("Viewpoint = %v, %v", p, ok)
	}
	c.Active = false
	if _, ok := c.Viewpoint(); ok {
		t.Error("inactive camera should report no viewpoint")
	}
	c.SetViewport(100, 0)
	if c.AspectRatio != float32(1280)/720 {
		t.Error("zero height viewport should keep the aspect ratio")
	}
}
