package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Band is the elevation class a chunk's material falls into.
type Band uint8

const (
	BandLightGrass Band = iota
	BandGrass
	BandRock
)

func (b Band) String() string {
	switch b {
	case BandLightGrass:
		return "light-grass"
	case BandGrass:
		return "grass"
	case BandRock:
		return "rock"
	}
	return "unknown"
}

// Material is the single flat surface description shared by a whole chunk.
type Material struct {
	BaseColor   mgl32.Vec3 // linear sRGB components in [0, 1]
	Band        Band
	Metallic    float32
	Roughness   float32
	Reflectance float32
}

// Palette holds the height bands and their colors.
type Palette struct {
	Low        float32 // height factor where the grass blend starts
	Mid        float32 // height factor where rock starts
	BlendLimit float32 // saturation of the in-band blend weight

	LightGrass mgl32.Vec3
	DarkGrass  mgl32.Vec3
	RockLow    mgl32.Vec3
	RockHigh   mgl32.Vec3

	Metallic    float32
	Roughness   float32
	Reflectance float32
}

// DefaultPalette is the forest palette: grass in the valleys fading to grey rock on the ridges.
var DefaultPalette = Palette{
	Low:        0.15,
	Mid:        0.4,
	BlendLimit: 1.0,

	LightGrass: mgl32.Vec3{0.3, 0.65, 0.25},
	DarkGrass:  mgl32.Vec3{0.15, 0.4, 0.15},
	RockLow:    mgl32.Vec3{0.5, 0.5, 0.5},
	RockHigh:   mgl32.Vec3{0.6, 0.55, 0.5},

	Metallic:    0.0,
	Roughness:   0.95,
	Reflectance: 0.02,
}

// ClassifyMaterial classifies with DefaultPalette.
func ClassifyMaterial(avgHeight, heightScale float32) Material {
	return DefaultPalette.Classify(avgHeight, heightScale)
}

// HeightFactor normalizes an elevation by the height scale into [0, 1].
func HeightFactor(avgHeight, heightScale float32) float32 {
	f := float64(avgHeight) / float64(heightScale)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return mgl32.Clamp(float32(f), 0, 1)
}

// Classify maps a chunk's average height to a material.
func (p Palette) Classify(avgHeight, heightScale float32) Material {
	f := HeightFactor(avgHeight, heightScale)
	m := Material{
		Metallic:    p.Metallic,
		Roughness:   p.Roughness,
		Reflectance: p.Reflectance,
	}

	switch {
	case f > p.Mid:
		blend := min((f-p.Mid)/(1-p.Mid), p.BlendLimit)
		m.Band = BandRock
		m.BaseColor = lerpColor(p.RockLow, p.RockHigh, blend)
	case f > p.Low:
		blend := min((f-p.Low)/(p.Mid-p.Low), p.BlendLimit)
		m.Band = BandGrass
		m.BaseColor = lerpColor(p.DarkGrass, p.LightGrass, blend)
	default:
		m.Band = BandLightGrass
		m.BaseColor = p.LightGrass
	}
	return m
}

func lerpColor(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
