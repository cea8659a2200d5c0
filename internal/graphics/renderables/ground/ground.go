package ground

import (
	_ "embed"
	"log/slog"

	"forest-explorer/internal/graphics"
	renderer "forest-explorer/internal/graphics/renderer"
	"forest-explorer/internal/profiling"
	"forest-explorer/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/ground.vert
	groundVert string
	//go:embed shaders/ground.frag
	groundFrag string
)

// LightDir is the direction towards the sun.
var LightDir = mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()

var _ terrain.Substrate = (*Ground)(nil)

type chunkMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	lo, hi        mgl32.Vec3
	material      terrain.Material
}

// Ground draws streamed terrain chunks. It is the GPU side of the chunk
// streamer: Submit uploads a mesh and Release frees it. Both must run on the
// thread that owns the GL context.
type Ground struct {
	shader *graphics.Shader
	log    *slog.Logger

	meshes map[terrain.Handle]*chunkMesh
	next   terrain.Handle

	// Wireframe draws polygon outlines instead of filled triangles
	Wireframe bool

	drawn, culled int
}

// NewGround creates the terrain renderable. A nil logger discards output.
func NewGround(log *slog.Logger) *Ground {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Ground{
		log:    log.With("component", "ground"),
		meshes: make(map[terrain.Handle]*chunkMesh),
	}
}

func (g *Ground) Init() error {
	var err error
	g.shader, err = graphics.NewShader(groundVert, groundFrag)
	return err
}

// Submit uploads the mesh into a VAO with interleaved vertex data and an
// index buffer.
func (g *Ground) Submit(mesh *terrain.Mesh, material terrain.Material) terrain.Handle {
	defer profiling.Track("ground.Submit")()

	cm := &chunkMesh{
		indexCount: int32(len(mesh.Indices)),
		material:   material,
	}
	cm.lo, cm.hi = mesh.Bounds()
	verts := mesh.Interleave()

	gl.GenVertexArrays(1, &cm.vao)
	gl.BindVertexArray(cm.vao)

	gl.GenBuffers(1, &cm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, cm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &cm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, cm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(terrain.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		g.log.Error("chunk upload failed", "gl_error", code, "vertices", mesh.VertexCount())
	}

	g.next++
	g.meshes[g.next] = cm
	return g.next
}

// Release frees the GL objects behind h. Unknown handles are ignored.
func (g *Ground) Release(h terrain.Handle) {
	cm, ok := g.meshes[h]
	if !ok {
		g.log.Warn("release of unknown handle", "handle", h)
		return
	}
	deleteMesh(cm)
	delete(g.meshes, h)
}

func deleteMesh(cm *chunkMesh) {
	gl.DeleteVertexArrays(1, &cm.vao)
	gl.DeleteBuffers(1, &cm.vbo)
	gl.DeleteBuffers(1, &cm.ebo)
}

// Render draws every live chunk whose bounds intersect the view frustum.
func (g *Ground) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderGround")()

	if g.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	g.shader.Use()
	g.shader.SetMat4("proj", ctx.Proj)
	g.shader.SetMat4("view", ctx.View)
	g.shader.SetVec3("lightDir", LightDir)
	g.shader.SetVec3("cameraPos", ctx.Camera.Position)

	g.drawn, g.culled = 0, 0
	for _, cm := range g.meshes {
		if !ctx.Frustum.IntersectsAABB(cm.lo, cm.hi) {
			g.culled++
			continue
		}
		g.shader.SetVec3("baseColor", cm.material.BaseColor)
		g.shader.SetFloat("roughness", cm.material.Roughness)
		g.shader.SetFloat("reflectance", cm.material.Reflectance)
		gl.BindVertexArray(cm.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, cm.indexCount, gl.UNSIGNED_INT, 0)
		g.drawn++
	}
	gl.BindVertexArray(0)
}

// Stats reports how many chunks the last frame drew and culled.
func (g *Ground) Stats() (drawn, culled int) { return g.drawn, g.culled }

// Live is the number of uploaded chunks.
func (g *Ground) Live() int { return len(g.meshes) }

func (g *Ground) Dispose() {
	for h, cm := range g.meshes {
		deleteMesh(cm)
		delete(g.meshes, h)
	}
	if g.shader != nil {
		g.shader.Delete()
	}
}
