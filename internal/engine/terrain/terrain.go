// Package terrain owns the procedural island heightfield and answers
// world-space height and normal queries for rendering and player grounding.
package terrain

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/noise"
)

// Terrain is a dense heightfield over a fixed grid centered at the world
// origin. Heights are regenerated by Build; all queries read the CPU-side
// cache, which stays authoritative over whatever mesh was uploaded to the GPU.
type Terrain struct {
	widthVerts  int
	depthVerts  int
	gridSpacing float32

	// World-space XZ of grid vertex (0,0).
	originX float32
	originZ float32

	heights []float32

	// WaterHeight feeds the vertex color ramp and the water subsystem.
	WaterHeight float32

	mesh Mesh
}

// New creates a terrain with fixed dimensions. The grid is centered so the
// world origin sits in the middle of the island.
func New(widthVerts, depthVerts int, gridSpacing float32) (*Terrain, error) {
	if widthVerts < 2 || depthVerts < 2 {
		return nil, fmt.Errorf("terrain grid too small: %dx%d (need at least 2x2)", widthVerts, depthVerts)
	}
	if gridSpacing <= 0 {
		return nil, fmt.Errorf("terrain grid spacing must be positive, got %v", gridSpacing)
	}

	width := float32(widthVerts-1) * gridSpacing
	depth := float32(depthVerts-1) * gridSpacing

	return &Terrain{
		widthVerts:  widthVerts,
		depthVerts:  depthVerts,
		gridSpacing: gridSpacing,
		originX:     -width * 0.5,
		originZ:     -depth * 0.5,
		heights:     make([]float32, widthVerts*depthVerts),
	}, nil
}

// Build regenerates the heightfield from fractal noise and rebuilds the
// render mesh. Safe to call repeatedly; every call fully overwrites the
// previous heights. noiseScale must be non-zero or the field degenerates to
// a constant.
func (t *Terrain) Build(noiseScale, heightScale float32, seed int) {
	for z := 0; z < t.depthVerts; z++ {
		for x := 0; x < t.widthVerts; x++ {
			wx := t.originX + float32(x)*t.gridSpacing
			wz := t.originZ + float32(z)*t.gridSpacing

			h := noise.FBM(wx*noiseScale, wz*noiseScale, seed) * heightScale
			t.heights[x+z*t.widthVerts] = h
		}
	}

	t.mesh = t.buildMesh()
}

// sampleGrid reads a cached height with indices clamped into bounds.
func (t *Terrain) sampleGrid(ix, iz int) float32 {
	ix = clampi(ix, 0, t.widthVerts-1)
	iz = clampi(iz, 0, t.depthVerts-1)
	return t.heights[ix+iz*t.widthVerts]
}

// GetHeight returns the bilinearly interpolated terrain height at a world
// position. Out-of-range coordinates clamp to the nearest edge, so the
// terrain extends flat beyond its boundary under query.
func (t *Terrain) GetHeight(worldX, worldZ float32) float32 {
	lx := (worldX - t.originX) / t.gridSpacing
	lz := (worldZ - t.originZ) / t.gridSpacing

	x0 := int(gomath.Floor(float64(lx)))
	z0 := int(gomath.Floor(float64(lz)))

	// Clamp the base cell so all four corner lookups stay in bounds.
	x0 = clampi(x0, 0, t.widthVerts-2)
	z0 = clampi(z0, 0, t.depthVerts-2)

	tx := clampf(lx-float32(x0), 0, 1)
	tz := clampf(lz-float32(z0), 0, 1)

	h00 := t.sampleGrid(x0, z0)
	h10 := t.sampleGrid(x0+1, z0)
	h01 := t.sampleGrid(x0, z0+1)
	h11 := t.sampleGrid(x0+1, z0+1)

	// Weighted form rather than a+(b-a)*t: it reproduces the cached
	// heights bit-exactly at t=0 and t=1, which matters on the max
	// row/column where the clamped base cell puts vertices at t=1.
	hx0 := h00*(1-tx) + h10*tx
	hx1 := h01*(1-tx) + h11*tx
	return hx0*(1-tz) + hx1*tz
}

// GetNormal estimates the surface normal by central differences. A degenerate
// gradient (locally flat terrain) falls back to world up rather than
// propagating NaN into lighting.
func (t *Terrain) GetNormal(worldX, worldZ float32) mgl32.Vec3 {
	eps := t.gridSpacing
	hL := t.GetHeight(worldX-eps, worldZ)
	hR := t.GetHeight(worldX+eps, worldZ)
	hD := t.GetHeight(worldX, worldZ-eps)
	hU := t.GetHeight(worldX, worldZ+eps)

	n := mgl32.Vec3{-(hR - hL), 2 * eps, -(hU - hD)}
	if n.Len() < 1e-6 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

// Mesh returns the triangle list produced by the last Build.
func (t *Terrain) Mesh() *Mesh {
	return &t.mesh
}

// Bounds of the playable area, used to keep the player and campfire on the island.

func (t *Terrain) MinX() float32 { return t.originX }
func (t *Terrain) MinZ() float32 { return t.originZ }
func (t *Terrain) MaxX() float32 {
	return t.originX + float32(t.widthVerts-1)*t.gridSpacing
}
func (t *Terrain) MaxZ() float32 {
	return t.originZ + float32(t.depthVerts-1)*t.gridSpacing
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
