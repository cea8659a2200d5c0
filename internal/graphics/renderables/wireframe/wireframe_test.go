package wireframe

import (
	"testing"

	"forest-explorer/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

func TestModelCoversChunk(t *testing.T) {
	cfg := terrain.DefaultConfig()
	w := NewChunkBorders(cfg, func() terrain.ChunkCoord { return terrain.ChunkCoord{} })
	m := w.Model(terrain.ChunkCoord{X: -1, Z: 2})

	lo := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	hi := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	if lo != (mgl32.Vec3{-32, -5, 64}) {
		t.Errorf("lower corner = %v", lo)
	}
	if hi != (mgl32.Vec3{0, 5, 96}) {
		t.Errorf("upper corner = %v", hi)
	}
}
