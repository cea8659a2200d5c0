package terrain

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// HeightField maps a 2D sample coordinate to an elevation. Implementations
// are deterministic for a given seed and safe for concurrent readers.
type HeightField interface {
	Sample(x, z float64) float32
}

var ErrUnknownNoise = errors.New("terrain: unknown noise kind")

const (
	NoisePerlin  = "perlin"
	NoiseSimplex = "simplex"
	NoiseFlat    = "flat"
)

// NewHeightField builds the named noise backend.
func NewHeightField(kind string, seed int64) (HeightField, error) {
	switch kind {
	case NoisePerlin, "":
		return NewPerlinField(seed), nil
	case NoiseSimplex:
		return NewSimplexField(seed), nil
	case NoiseFlat:
		return FlatField(0), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNoise, kind)
}

// Single-octave gradient noise; alpha and beta only matter above one octave.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 1
)

// PerlinField samples seeded Perlin gradient noise.
type PerlinField struct {
	seed  int64
	noise *perlin.Perlin
}

func NewPerlinField(seed int64) *PerlinField {
	return NewPerlinFieldOctaves(seed, perlinOctaves)
}

// NewPerlinFieldOctaves sums n octaves, each at twice the previous frequency
// and half the weight.
func NewPerlinFieldOctaves(seed int64, n int32) *PerlinField {
	if n < 1 {
		n = 1
	}
	return &PerlinField{
		seed:  seed,
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, n, seed),
	}
}

func (f *PerlinField) Sample(x, z float64) float32 {
	return float32(f.noise.Noise2D(x, z))
}

func (f *PerlinField) Seed() int64 { return f.seed }

// SimplexField samples OpenSimplex noise in [-1, 1].
type SimplexField struct {
	seed  int64
	noise opensimplex.Noise
}

func NewSimplexField(seed int64) *SimplexField {
	return &SimplexField{seed: seed, noise: opensimplex.New(seed)}
}

func (f *SimplexField) Sample(x, z float64) float32 {
	return float32(f.noise.Eval2(x, z))
}

func (f *SimplexField) Seed() int64 { return f.seed }

// FlatField returns the same elevation everywhere.
type FlatField float32

func (f FlatField) Sample(_, _ float64) float32 { return float32(f) }
