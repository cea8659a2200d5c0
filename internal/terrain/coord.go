package terrain

import (
	"fmt"
	"math"
)

// ChunkCoord identifies a chunk on the infinite XZ grid.
type ChunkCoord struct {
	X, Z int32
}

// ChunkCoordAt returns the chunk containing world position (x, z).
func ChunkCoordAt(x, z, chunkSize float32) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(x, chunkSize),
		Z: floorDiv(z, chunkSize),
	}
}

// floorDiv divides in float64 so a float32 position just below a chunk edge
// never rounds up into the next chunk.
func floorDiv(v, size float32) int32 {
	q := math.Floor(float64(v) / float64(size))
	switch {
	case q >= math.MaxInt32:
		return math.MaxInt32
	case q <= math.MinInt32:
		return math.MinInt32
	case math.IsNaN(q):
		return 0
	}
	return int32(q)
}

// Origin returns the world-space XZ corner of the chunk.
func (c ChunkCoord) Origin(chunkSize float32) (x, z float32) {
	return float32(float64(c.X) * float64(chunkSize)), float32(float64(c.Z) * float64(chunkSize))
}

// ChebyshevDistance is max(|dx|, |dz|) in chunks.
func (c ChunkCoord) ChebyshevDistance(o ChunkCoord) int32 {
	dx := absDiff(c.X, o.X)
	dz := absDiff(c.Z, o.Z)
	return max(dx, dz)
}

func absDiff(a, b int32) int32 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	if d > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(d)
}

// Window lists every coordinate within radius of c, X outer and Z inner.
func (c ChunkCoord) Window(radius int32) []ChunkCoord {
	if radius < 0 {
		return nil
	}
	side := int(2*radius + 1)
	out := make([]ChunkCoord, 0, side*side)
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			out = append(out, ChunkCoord{X: c.X + dx, Z: c.Z + dz})
		}
	}
	return out
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}
