package terrain

import (
	"fmt"
	"log/slog"
	"time"

	"forest-explorer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Substrate accepts chunk geometry for drawing and frees it on request.
type Substrate interface {
	Submit(mesh *Mesh, material Material) Handle
	Release(h Handle)
}

// ViewpointProvider reports the observer position. ok is false while there
// is no active observer.
type ViewpointProvider interface {
	Viewpoint() (pos mgl32.Vec3, ok bool)
}

// TickStats summarizes one streaming pass.
type TickStats struct {
	Center   ChunkCoord
	Loaded   int
	Evicted  int
	Skipped  bool
	Duration time.Duration
}

// ChunkStreamer keeps the loaded chunk set equal to the square window of
// RenderDistance chunks around the viewpoint's chunk.
type ChunkStreamer struct {
	cfg      Config
	field    HeightField
	registry *ChunkRegistry
	sink     Substrate
	log      *slog.Logger

	center ChunkCoord
	ticks  uint64
}

// NewChunkStreamer validates cfg and wires the streamer to its collaborators.
// A nil logger discards output.
func NewChunkStreamer(cfg Config, field HeightField, sink Substrate, log *slog.Logger) (*ChunkStreamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if field == nil {
		return nil, fmt.Errorf("terrain: nil height field")
	}
	if sink == nil {
		return nil, fmt.Errorf("terrain: nil substrate")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ChunkStreamer{
		cfg:      cfg,
		field:    field,
		registry: NewChunkRegistry(),
		sink:     sink,
		log:      log.With("component", "terrain"),
	}, nil
}

// Start performs the initial load around the origin chunk.
func (cs *ChunkStreamer) Start() (TickStats, error) {
	stats, err := cs.Advance(mgl32.Vec3{})
	if err != nil {
		return stats, err
	}
	cs.log.Info("terrain ready",
		"chunks", cs.registry.Len(),
		"chunk_size", cs.cfg.ChunkSize,
		"render_distance", cs.cfg.RenderDistance,
		"resolution", cs.cfg.Resolution,
		"elapsed", stats.Duration)
	return stats, nil
}

// Tick runs one streaming pass from the provider's current viewpoint. When no
// viewpoint is available the pass is skipped and retried next tick.
func (cs *ChunkStreamer) Tick(p ViewpointProvider) (TickStats, error) {
	pos, ok := p.Viewpoint()
	if !ok {
		return TickStats{Center: cs.center, Skipped: true}, nil
	}
	return cs.Advance(pos)
}

// Advance evicts chunks outside the window around viewpoint and loads the
// missing ones. Eviction runs first to bound peak resource use.
func (cs *ChunkStreamer) Advance(viewpoint mgl32.Vec3) (TickStats, error) {
	defer profiling.Track("terrain.Advance")()
	start := time.Now()

	center := ChunkCoordAt(viewpoint.X(), viewpoint.Z(), cs.cfg.ChunkSize)
	if center != cs.center {
		cs.log.Debug("camera chunk changed", "from", cs.center, "to", center)
	}
	cs.center = center
	cs.ticks++

	stats := TickStats{Center: center}
	stats.Evicted = cs.evictOutside(center)

	loaded, err := cs.loadWindow(center)
	stats.Loaded = loaded
	stats.Duration = time.Since(start)
	return stats, err
}

func (cs *ChunkStreamer) evictOutside(center ChunkCoord) int {
	removed := 0
	for _, chunk := range cs.registry.Chunks() {
		if chunk.Coord.ChebyshevDistance(center) <= cs.cfg.RenderDistance {
			continue
		}
		cs.sink.Release(chunk.Handle)
		cs.registry.Remove(chunk.Coord)
		cs.log.Debug("chunk evicted", "coord", chunk.Coord, "handle", chunk.Handle)
		removed++
	}
	return removed
}

func (cs *ChunkStreamer) loadWindow(center ChunkCoord) (int, error) {
	loaded := 0
	for _, coord := range center.Window(cs.cfg.RenderDistance) {
		if cs.registry.Contains(coord) {
			continue
		}
		if err := cs.load(coord); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

func (cs *ChunkStreamer) load(coord ChunkCoord) error {
	mesh, material, err := BuildChunkMesh(coord, cs.cfg, cs.field)
	if err != nil {
		return err
	}
	h := cs.sink.Submit(mesh, material)
	cs.registry.Insert(LoadedChunk{Coord: coord, Handle: h, Material: material})
	cs.log.Debug("chunk loaded", "coord", coord, "handle", h, "band", material.Band)
	return nil
}

// Close releases every loaded chunk.
func (cs *ChunkStreamer) Close() {
	for _, chunk := range cs.registry.Chunks() {
		cs.sink.Release(chunk.Handle)
		cs.registry.Remove(chunk.Coord)
	}
}

func (cs *ChunkStreamer) Registry() *ChunkRegistry { return cs.registry }

func (cs *ChunkStreamer) Config() Config { return cs.cfg }

// CameraChunk is the window center used by the latest pass.
func (cs *ChunkStreamer) CameraChunk() ChunkCoord { return cs.center }

// Ticks counts completed passes, including Start.
func (cs *ChunkStreamer) Ticks() uint64 { return cs.ticks }

// HeightAt samples the terrain surface elevation at a world position, the
// same value the mesh builder would place at that point.
func (cs *ChunkStreamer) HeightAt(x, z float32) float32 {
	return cs.field.Sample(float64(x)*cs.cfg.NoiseScale, float64(z)*cs.cfg.NoiseScale) * cs.cfg.HeightScale
}
