// Package preview renders streamed terrain into images without a GPU.
package preview

import (
	"image"
	"image/color"
	"math"

	"forest-explorer/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

// Background fills the area of the map with no loaded chunk.
var Background = color.RGBA{R: 128, G: 179, B: 255, A: 255}

var sun = mgl32.Vec3{-0.5, 1, -0.5}.Normalize()

type tile struct {
	coord terrain.ChunkCoord
	res   int
	pix   []color.RGBA // res*res, row-major by Z
}

// Raster is a headless chunk substrate. Each submitted chunk becomes a
// hill-shaded tile of res×res pixels tinted with its material color.
type Raster struct {
	chunkSize float32
	tiles     map[terrain.Handle]*tile
	next      terrain.Handle

	Submits, Releases int
	// UnknownReleases counts releases of handles that were never issued or
	// were already released.
	UnknownReleases int
}

var _ terrain.Substrate = (*Raster)(nil)

func NewRaster(chunkSize float32) *Raster {
	return &Raster{
		chunkSize: chunkSize,
		tiles:     make(map[terrain.Handle]*tile),
	}
}

func (r *Raster) Submit(mesh *terrain.Mesh, material terrain.Material) terrain.Handle {
	side := int(math.Round(math.Sqrt(float64(mesh.VertexCount()))))
	res := max(side-1, 1)

	// the first vertex is the chunk origin; sample the middle of the chunk
	// so rounding at the origin cannot select the neighbour
	o := mesh.Positions[0]
	half := r.chunkSize / 2
	t := &tile{
		coord: terrain.ChunkCoordAt(o.X()+half, o.Z()+half, r.chunkSize),
		res:   res,
		pix:   make([]color.RGBA, res*res),
	}
	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			n := mesh.Normals[z*side+x]
			light := 0.45 + 0.55*max(n.Dot(sun), 0)
			t.pix[z*res+x] = shade(material.BaseColor, light)
		}
	}

	r.next++
	r.tiles[r.next] = t
	r.Submits++
	return r.next
}

func (r *Raster) Release(h terrain.Handle) {
	if _, ok := r.tiles[h]; !ok {
		r.UnknownReleases++
		return
	}
	delete(r.tiles, h)
	r.Releases++
}

// Live is the number of chunks currently held.
func (r *Raster) Live() int { return len(r.tiles) }

func shade(c mgl32.Vec3, light float32) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v*light, 0, 1)*255 + 0.5)
	}
	return color.RGBA{R: ch(c.X()), G: ch(c.Y()), B: ch(c.Z()), A: 255}
}

// Extent returns the inclusive chunk range covered by live tiles.
func (r *Raster) Extent() (lo, hi terrain.ChunkCoord, ok bool) {
	for _, t := range r.tiles {
		if !ok {
			lo, hi, ok = t.coord, t.coord, true
			continue
		}
		lo.X, lo.Z = min(lo.X, t.coord.X), min(lo.Z, t.coord.Z)
		hi.X, hi.Z = max(hi.X, t.coord.X), max(hi.Z, t.coord.Z)
	}
	return lo, hi, ok
}

// Image paints the live chunks top-down, +X to the right and +Z downwards,
// and scales the result by scale with nearest-neighbour sampling. An empty
// raster yields a single background pixel.
func (r *Raster) Image(scale int) *image.RGBA {
	lo, hi, ok := r.Extent()
	if !ok {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, Background)
		return img
	}

	res := 1
	for _, t := range r.tiles {
		res = max(res, t.res)
	}
	w := int(hi.X-lo.X+1) * res
	h := int(hi.Z-lo.Z+1) * res
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(src, src.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for _, t := range r.tiles {
		ox := int(t.coord.X-lo.X) * res
		oz := int(t.coord.Z-lo.Z) * res
		// tiles of a coarser resolution are stretched to fill the cell
		for pz := 0; pz < res; pz++ {
			for px := 0; px < res; px++ {
				c := t.pix[(pz*t.res/res)*t.res+px*t.res/res]
				src.SetRGBA(ox+px, oz+pz, c)
			}
		}
	}

	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
