package terrain

import (
	"cmp"
	"slices"
	"sync"
)

// Handle is an opaque token for resources owned by the render substrate.
type Handle uint64

// LoadedChunk is the lifecycle record for one materialized chunk.
type LoadedChunk struct {
	Coord    ChunkCoord
	Handle   Handle
	Material Material
}

// ChunkRegistry is the set of loaded chunks keyed by coordinate.
type ChunkRegistry struct {
	chunks   map[ChunkCoord]LoadedChunk
	mu       sync.RWMutex
	modCount uint64 // Increases on any chunk add/remove
}

// NewChunkRegistry creates an empty registry.
func NewChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{
		chunks: make(map[ChunkCoord]LoadedChunk),
	}
}

// Contains reports whether a chunk is loaded at coord.
func (r *ChunkRegistry) Contains(coord ChunkCoord) bool {
	r.mu.RLock()
	_, ok := r.chunks[coord]
	r.mu.RUnlock()
	return ok
}

// Get returns the loaded chunk at coord, if any.
func (r *ChunkRegistry) Get(coord ChunkCoord) (LoadedChunk, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.chunks[coord]
	return c, ok
}

// Insert records a loaded chunk. Inserting an already present coordinate
// keeps the existing record and returns false.
func (r *ChunkRegistry) Insert(chunk LoadedChunk) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chunks[chunk.Coord]; ok {
		return false
	}
	r.chunks[chunk.Coord] = chunk
	r.modCount++
	return true
}

// Remove drops the chunk at coord and returns it. Removing an absent
// coordinate is a no-op.
func (r *ChunkRegistry) Remove(coord ChunkCoord) (LoadedChunk, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chunks[coord]
	if !ok {
		return LoadedChunk{}, false
	}
	delete(r.chunks, coord)
	r.modCount++
	return c, true
}

func (r *ChunkRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chunks)
}

// Coords returns the loaded coordinates sorted by X then Z.
func (r *ChunkRegistry) Coords() []ChunkCoord {
	r.mu.RLock()
	out := make([]ChunkCoord, 0, len(r.chunks))
	for coord := range r.chunks {
		out = append(out, coord)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, compareCoords)
	return out
}

// Chunks returns a snapshot of every loaded chunk, in Coords order.
func (r *ChunkRegistry) Chunks() []LoadedChunk {
	r.mu.RLock()
	out := make([]LoadedChunk, 0, len(r.chunks))
	for _, c := range r.chunks {
		out = append(out, c)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b LoadedChunk) int { return compareCoords(a.Coord, b.Coord) })
	return out
}

// ModCount returns the current modification count of the registry.
func (r *ChunkRegistry) ModCount() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modCount
}

func compareCoords(a, b ChunkCoord) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}
