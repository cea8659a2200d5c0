package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClassifyMaterialBands(t *testing.T) {
	cases := []struct {
		name      string
		avg       float32
		wantBand  Band
		wantColor mgl32.Vec3
	}{
		// height factor 0.02
		{"low valley", 0.1, BandLightGrass, mgl32.Vec3{0.3, 0.65, 0.25}},
		// height factor 0.6, blend 1/3
		{"ridge", 3.0, BandRock, mgl32.Vec3{0.5 + 0.1/3, 0.5 + 0.05/3, 0.5}},
		// height factor 0.2, blend 0.2
		{"slope", 1.0, BandGrass, mgl32.Vec3{0.15 + 0.2*0.15, 0.4 + 0.2*0.25, 0.15 + 0.2*0.1}},
		// factor clamps to 1, blend saturates
		{"peak", 100, BandRock, mgl32.Vec3{0.6, 0.55, 0.5}},
		// factor clamps to 0
		{"below sea", -3, BandLightGrass, mgl32.Vec3{0.3, 0.65, 0.25}},
		// exactly on the low threshold stays light grass
		{"low threshold", 0.75, BandLightGrass, mgl32.Vec3{0.3, 0.65, 0.25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := ClassifyMaterial(tc.avg, 5.0)
			if m.Band != tc.wantBand {
				t.Errorf("band = %v, want %v", m.Band, tc.wantBand)
			}
			if !m.BaseColor.ApproxEqualThreshold(tc.wantColor, 1e-5) {
				t.Errorf("color = %v, want %v", m.BaseColor, tc.wantColor)
			}
			if m.Metallic != 0 || m.Roughness != 0.95 || m.Reflectance != 0.02 {
				t.Errorf("surface params = %+v", m)
			}
		})
	}
}

func TestGrassBandMeetsLightGrassAtMid(t *testing.T) {
	// just below the rock threshold the grass blend reaches light grass
	m := ClassifyMaterial(0.4*5-1e-5, 5.0)
	if m.Band != BandGrass {
		t.Fatalf("band = %v, want grass", m.Band)
	}
	if !m.BaseColor.ApproxEqualThreshold(DefaultPalette.LightGrass, 1e-4) {
		t.Errorf("color = %v, want ~%v", m.BaseColor, DefaultPalette.LightGrass)
	}
}

func TestHeightFactorDegenerateScale(t *testing.T) {
	if f := HeightFactor(1, 0); f != 0 {
		t.Errorf("HeightFactor(1, 0) = %v, want 0", f)
	}
	if f := HeightFactor(0, 0); f != 0 {
		t.Errorf("HeightFactor(0, 0) = %v, want 0", f)
	}
	if f := HeightFactor(float32(math.NaN()), 5); f != 0 {
		t.Errorf("HeightFactor(NaN, 5) = %v, want 0", f)
	}
	if m := ClassifyMaterial(3, 0); m.Band != BandLightGrass {
		t.Errorf("zero height scale should classify as light grass, got %v", m.Band)
	}
}

func TestPaletteBlendLimit(t *testing.T) {
	p := DefaultPalette
	p.BlendLimit = 0.5
	m := p.Classify(5, 5)
	want := mgl32.Vec3{0.55, 0.525, 0.5}
	if !m.BaseColor.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("color = %v, want %v", m.BaseColor, want)
	}
}

// The mesh builder classifies on the average height of the whole chunk.
func TestBuildChunkMeshClassifiesAverageHeight(t *testing.T) {
	cfg := testConfig(4)
	_, low, err := BuildChunkMesh(ChunkCoord{0, 0}, cfg, FlatField(0.02))
	if err != nil {
		t.Fatal(err)
	}
	if low.Band != BandLightGrass {
		t.Errorf("average 0.1 classified as %v, want light grass", low.Band)
	}
	_, high, err := BuildChunkMesh(ChunkCoord{0, 0}, cfg, FlatField(0.6))
	if err != nil {
		t.Fatal(err)
	}
	if high.Band != BandRock {
		t.Errorf("average 3.0 classified as %v, want rock", high.Band)
	}
}

func TestBandString(t *testing.T) {
	if BandRock.String() != "rock" || BandGrass.String() != "grass" || BandLightGrass.String() != "light-grass" {
		t.Error("unexpected band names")
	}
	if Band(9).String() != "unknown" {
		t.Error("out of range band should be unknown")
	}
}
