package config

import "forest-explorer/internal/terrain"

// TerrainSettings holds the terrain generation parameters
type TerrainSettings struct {
	ChunkSize      float32 `yaml:"chunk_size"`
	RenderDistance int32   `yaml:"render_distance"` // in chunks
	HeightScale    float32 `yaml:"height_scale"`
	NoiseScale     float64 `yaml:"noise_scale"`
	Resolution     int     `yaml:"resolution"`
	Seed           int64   `yaml:"seed"`
	Noise          string  `yaml:"noise"` // perlin, simplex or flat
}

func DefaultTerrain() TerrainSettings {
	d := terrain.DefaultConfig()
	return TerrainSettings{
		ChunkSize:      d.ChunkSize,
		RenderDistance: d.RenderDistance,
		HeightScale:    d.HeightScale,
		NoiseScale:     d.NoiseScale,
		Resolution:     d.Resolution,
		Seed:           d.Seed,
		Noise:          terrain.NoisePerlin,
	}
}

// Config converts the section into the terrain package's config.
func (t TerrainSettings) Config() terrain.Config {
	return terrain.Config{
		ChunkSize:      t.ChunkSize,
		RenderDistance: t.RenderDistance,
		HeightScale:    t.HeightScale,
		NoiseScale:     t.NoiseScale,
		Resolution:     t.Resolution,
		Seed:           t.Seed,
	}
}

// HeightField builds the configured noise backend.
func (t TerrainSettings) HeightField() (terrain.HeightField, error) {
	return terrain.NewHeightField(t.Noise, t.Seed)
}
