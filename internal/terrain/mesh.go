package terrain

import (
	"fmt"
	"math"

	"forest-explorer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of float32 per interleaved vertex (pos.xyz + normal.xyz + uv).
const VertexStride = 8

// Mesh is an indexed triangle list for one chunk surface.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// BuildChunkMesh samples the height field over the chunk's grid and returns
// its triangulated surface together with the chunk's material.
func BuildChunkMesh(coord ChunkCoord, cfg Config, field HeightField) (*Mesh, Material, error) {
	defer profiling.Track("terrain.BuildChunkMesh")()

	res := cfg.Resolution
	if res <= 0 {
		return nil, Material{}, fmt.Errorf("build chunk %v: %w: got %d", coord, ErrInvalidResolution, res)
	}

	side := res + 1
	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, side*side),
		Normals:   make([]mgl32.Vec3, side*side),
		UVs:       make([]mgl32.Vec2, 0, side*side),
		Indices:   make([]uint32, 0, res*res*6),
	}

	// World coordinates come from the global vertex index, so the last column
	// of one chunk and the first column of its neighbour sample the exact same
	// point.
	step := float64(cfg.ChunkSize) / float64(res)
	baseX := int64(coord.X) * int64(res)
	baseZ := int64(coord.Z) * int64(res)

	var heightSum float64
	for z := 0; z < side; z++ {
		worldZ := float32(float64(baseZ+int64(z)) * step)
		v := float32(z) / float32(res)
		for x := 0; x < side; x++ {
			worldX := float32(float64(baseX+int64(x)) * step)
			u := float32(x) / float32(res)

			h := field.Sample(float64(worldX)*cfg.NoiseScale, float64(worldZ)*cfg.NoiseScale) * cfg.HeightScale
			heightSum += float64(h)

			m.Positions = append(m.Positions, mgl32.Vec3{worldX, h, worldZ})
			m.UVs = append(m.UVs, mgl32.Vec2{u, v})
		}
	}

	row := uint32(side)
	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			i := uint32(z)*row + uint32(x)
			m.Indices = append(m.Indices,
				i, i+row, i+1,
				i+1, i+row, i+row+1,
			)
		}
	}

	m.computeNormals()

	avg := float32(heightSum / float64(len(m.Positions)))
	return m, ClassifyMaterial(avg, cfg.HeightScale), nil
}

// computeNormals accumulates unit face normals into every corner and
// normalizes the sums, so shared vertices get the average of their faces.
func (m *Mesh) computeNormals() {
	for i := range m.Normals {
		m.Normals[i] = mgl32.Vec3{}
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		v0 := m.Positions[i0]
		edge1 := m.Positions[i1].Sub(v0)
		edge2 := m.Positions[i2].Sub(v0)
		n := safeNormalize(edge1.Cross(edge2))

		m.Normals[i0] = m.Normals[i0].Add(n)
		m.Normals[i1] = m.Normals[i1].Add(n)
		m.Normals[i2] = m.Normals[i2].Add(n)
	}
	for i, n := range m.Normals {
		m.Normals[i] = safeNormalize(n)
	}
}

var up = mgl32.Vec3{0, 1, 0}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) {
		return up
	}
	return v.Mul(1 / l)
}

func (m *Mesh) VertexCount() int { return len(m.Positions) }

func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// AverageHeight is the mean Y over all vertices.
func (m *Mesh) AverageHeight() float32 {
	if len(m.Positions) == 0 {
		return 0
	}
	var sum float64
	for _, p := range m.Positions {
		sum += float64(p.Y())
	}
	return float32(sum / float64(len(m.Positions)))
}

// Bounds returns the axis-aligned box enclosing every vertex.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], p[a])
			hi[a] = max(hi[a], p[a])
		}
	}
	return lo, hi
}

// Interleave packs the vertex attributes for a single GPU buffer.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i, p := range m.Positions {
		n := m.Normals[i]
		uv := m.UVs[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}
