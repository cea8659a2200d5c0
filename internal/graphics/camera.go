package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch limits looking up or down, in radians.
const MaxPitch = 1.4

// Camera is a free-flying perspective camera. Yaw and Pitch are radians;
// yaw 0 looks down +X.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32 // vertical, degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Active is false while the viewer has no observer, e.g. before the
	// first frame is laid out.
	Active bool
}

func NewCamera(width, height int, fov float32) *Camera {
	c := &Camera{
		FOV:       fov,
		NearPlane: 0.1,
		FarPlane:  1000.0,
		Active:    true,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. A zero height (minimized window)
// keeps the previous ratio.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Viewpoint reports the camera position for chunk streaming.
func (c *Camera) Viewpoint() (mgl32.Vec3, bool) {
	return c.Position, c.Active
}

func (c *Camera) Front() mgl32.Vec3 {
	fx := float32(math.Cos(float64(c.Yaw)) * math.Cos(float64(c.Pitch)))
	fy := float32(math.Sin(float64(c.Pitch)))
	fz := float32(math.Sin(float64(c.Yaw)) * math.Cos(float64(c.Pitch)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// Right is the horizontal strafe direction.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// Look turns the camera by a cursor delta in pixels.
func (c *Camera) Look(dx, dy float64, sensitivity float32) {
	c.Yaw += float32(dx) * sensitivity
	c.Yaw = float32(math.Mod(float64(c.Yaw), 2*math.Pi))
	c.Pitch = mgl32.Clamp(c.Pitch-float32(dy)*sensitivity, -MaxPitch, MaxPitch)
}

// Move translates the camera. forward and right are in [-1, 1] and move
// along the horizontal heading; up moves along world Y.
func (c *Camera) Move(forward, right, up, distance float32) {
	front := c.Front()
	heading := mgl32.Vec3{front.X(), 0, front.Z()}
	if heading.Len() > 0 {
		heading = heading.Normalize()
	}
	dir := heading.Mul(forward).Add(c.Right().Mul(right)).Add(mgl32.Vec3{0, up, 0})
	if dir.Len() == 0 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(distance))
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
