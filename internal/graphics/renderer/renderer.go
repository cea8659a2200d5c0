package renderer

import (
	"forest-explorer/internal/graphics"
	"forest-explorer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// SkyColor is the clear color behind the terrain.
var SkyColor = mgl32.Vec3{0.5, 0.7, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures global GL state and initializes every renderable
// in order.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			// dispose what was already initialized
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return &Renderer{renderables: rs, camera: camera}, nil
}

// Render clears the frame and draws all features.
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(SkyColor.X(), SkyColor.Y(), SkyColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := r.camera.ViewMatrix()
	proj := r.camera.ProjectionMatrix()
	ctx := RenderContext{
		Camera:  r.camera,
		DT:      dt,
		View:    view,
		Proj:    proj,
		Frustum: graphics.NewFrustum(proj.Mul4(view)),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and the camera aspect ratio.
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
}
