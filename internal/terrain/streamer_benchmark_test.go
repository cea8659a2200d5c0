package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type nullSubstrate struct{ next Handle }

func (s *nullSubstrate) Submit(*Mesh, Material) Handle { s.next++; return s.next }
func (s *nullSubstrate) Release(Handle)                {}

func BenchmarkBuildChunkMesh(b *testing.B) {
	cfg := DefaultConfig()
	field := NewPerlinField(cfg.Seed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = BuildChunkMesh(ChunkCoord{int32(i % 16), 0}, cfg, field)
	}
}

func BenchmarkBuildChunkMeshSimplex(b *testing.B) {
	cfg := DefaultConfig()
	field := NewSimplexField(cfg.Seed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = BuildChunkMesh(ChunkCoord{int32(i % 16), 0}, cfg, field)
	}
}

// Idle passes are the common case: the viewpoint stays inside one chunk.
func BenchmarkAdvanceIdle(b *testing.B) {
	cs, err := NewChunkStreamer(DefaultConfig(), NewPerlinField(12345), &nullSubstrate{}, nil)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := cs.Start(); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.Advance(mgl32.Vec3{float32(i % 30), 0, 4})
	}
}

func BenchmarkAdvanceCrossing(b *testing.B) {
	cs, err := NewChunkStreamer(DefaultConfig(), NewPerlinField(12345), &nullSubstrate{}, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.Advance(mgl32.Vec3{float32(i) * 32, 0, 0})
	}
}
