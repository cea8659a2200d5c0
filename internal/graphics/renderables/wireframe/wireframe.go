package wireframe

import (
	_ "embed"

	"forest-explorer/internal/graphics"
	renderer "forest-explorer/internal/graphics/renderer"
	"forest-explorer/internal/profiling"
	"forest-explorer/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/wireframe.vert
	wireframeVert string
	//go:embed shaders/wireframe.frag
	wireframeFrag string
)

// unit cube edges, 24 vertices for GL_LINES
var cubeEdges = []float32{
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1,
	1, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 0, 0,

	0, 1, 0, 1, 1, 0,
	1, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 1, 0,

	0, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, 0,
	1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1,
}

// ChunkBorders outlines the chunk the camera stands in as a box spanning
// the terrain's height range.
type ChunkBorders struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	chunkSize   float32
	heightScale float32
	center      func() terrain.ChunkCoord

	Enabled bool
}

// NewChunkBorders creates the overlay. center reports the current camera
// chunk each frame.
func NewChunkBorders(cfg terrain.Config, center func() terrain.ChunkCoord) *ChunkBorders {
	return &ChunkBorders{
		chunkSize:   cfg.ChunkSize,
		heightScale: cfg.HeightScale,
		center:      center,
	}
}

func (w *ChunkBorders) Init() error {
	var err error
	w.shader, err = graphics.NewShader(wireframeVert, wireframeFrag)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeEdges)*4, gl.Ptr(cubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return nil
}

// Model returns the transform that maps the unit cube onto the chunk's box.
func (w *ChunkBorders) Model(c terrain.ChunkCoord) mgl32.Mat4 {
	x, z := c.Origin(w.chunkSize)
	h := max(w.heightScale, 1)
	return mgl32.Translate3D(x, -h, z).Mul4(mgl32.Scale3D(w.chunkSize, 2*h, w.chunkSize))
}

func (w *ChunkBorders) Render(ctx renderer.RenderContext) {
	if !w.Enabled {
		return
	}
	defer profiling.Track("renderer.renderChunkBorders")()

	w.shader.Use()
	w.shader.SetMat4("proj", ctx.Proj)
	w.shader.SetMat4("view", ctx.View)
	w.shader.SetMat4("model", w.Model(w.center()))
	w.shader.SetVec3("color", mgl32.Vec3{1, 0.85, 0.2})

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(cubeEdges)/3))
	gl.BindVertexArray(0)
}

func (w *ChunkBorders) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}
