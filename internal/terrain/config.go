package terrain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidChunkSize      = errors.New("terrain: chunk size must be a positive finite number")
	ErrInvalidRenderDistance = errors.New("terrain: render distance must not be negative")
	ErrInvalidResolution     = errors.New("terrain: mesh resolution must be at least 1")
	ErrInvalidNoiseScale     = errors.New("terrain: noise scale must be finite")
)

// Config is fixed for the lifetime of a streaming session.
type Config struct {
	ChunkSize      float32 // world units per chunk edge
	RenderDistance int32   // Chebyshev radius in chunks
	HeightScale    float32 // amplitude multiplier applied to the noise sample
	NoiseScale     float64 // world coordinate multiplier before sampling
	Resolution     int     // grid cells per chunk edge
	Seed           int64
}

// DefaultConfig returns the settings the explorer ships with.
func DefaultConfig() Config {
	return Config{
		ChunkSize:      32.0,
		RenderDistance: 3,
		HeightScale:    5.0,
		NoiseScale:     0.1,
		Resolution:     32,
		Seed:           12345,
	}
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error
	size := float64(c.ChunkSize)
	if !(size > 0) || math.IsInf(size, 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrInvalidChunkSize, c.ChunkSize))
	}
	if c.RenderDistance < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidRenderDistance, c.RenderDistance))
	}
	if c.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidResolution, c.Resolution))
	}
	if math.IsNaN(c.NoiseScale) || math.IsInf(c.NoiseScale, 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrInvalidNoiseScale, c.NoiseScale))
	}
	return errors.Join(errs...)
}

// WindowSize is the number of chunks kept loaded once streaming settles.
func (c Config) WindowSize() int {
	side := int(2*c.RenderDistance + 1)
	return side * side
}
