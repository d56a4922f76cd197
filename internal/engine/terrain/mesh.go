package terrain

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is the number of floats per terrain vertex:
// position (3) + normal (3) + color (3), packed contiguously.
const VertexStride = 9

// Mesh is the CPU-side triangle list for the terrain surface, ready for GPU
// upload. Two triangles per grid cell, non-indexed: memory is traded for
// construction simplicity at these grid sizes.
type Mesh struct {
	Vertices []float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return m.VertexCount() / 3
}

func (t *Terrain) buildMesh() Mesh {
	cellsX := t.widthVerts - 1
	cellsZ := t.depthVerts - 1

	v := make([]float32, 0, cellsX*cellsZ*6*VertexStride)

	push := func(px, py, pz float32, n mgl32.Vec3, c mgl32.Vec3) {
		v = append(v, px, py, pz, n.X(), n.Y(), n.Z(), c.X(), c.Y(), c.Z())
	}

	for z := 0; z < cellsZ; z++ {
		for x := 0; x < cellsX; x++ {
			x0 := t.originX + float32(x)*t.gridSpacing
			x1 := t.originX + float32(x+1)*t.gridSpacing
			z0 := t.originZ + float32(z)*t.gridSpacing
			z1 := t.originZ + float32(z+1)*t.gridSpacing

			h00 := t.sampleGrid(x, z)
			h10 := t.sampleGrid(x+1, z)
			h01 := t.sampleGrid(x, z+1)
			h11 := t.sampleGrid(x+1, z+1)

			// Normals come from the continuous height function rather than
			// face normals, so shading matches the ground the player walks on.
			n00 := t.GetNormal(x0, z0)
			n10 := t.GetNormal(x1, z0)
			n01 := t.GetNormal(x0, z1)
			n11 := t.GetNormal(x1, z1)

			c00 := t.colorForHeight(h00)
			c10 := t.colorForHeight(h10)
			c01 := t.colorForHeight(h01)
			c11 := t.colorForHeight(h11)

			// tri 1: (x0,z0) (x1,z0) (x1,z1)
			push(x0, h00, z0, n00, c00)
			push(x1, h10, z0, n10, c10)
			push(x1, h11, z1, n11, c11)

			// tri 2: (x0,z0) (x1,z1) (x0,z1)
			push(x0, h00, z0, n00, c00)
			push(x1, h11, z1, n11, c11)
			push(x0, h01, z1, n01, c01)
		}
	}

	return Mesh{Vertices: v}
}

// colorForHeight maps a height to the island ramp: deep water, shallows,
// beach, grass, rock, snow. Thresholds are offsets from the water line.
func (t *Terrain) colorForHeight(h float32) mgl32.Vec3 {
	water := t.WaterHeight
	beach := water + 0.25
	grass := water + 1.20
	rock := water + 2.60
	snow := water + 3.40

	cUnderDeep := mgl32.Vec3{0.05, 0.12, 0.20}
	cUnderShal := mgl32.Vec3{0.08, 0.20, 0.30}
	cBeach := mgl32.Vec3{0.76, 0.70, 0.46}
	cGrass := mgl32.Vec3{0.18, 0.55, 0.20}
	cRock := mgl32.Vec3{0.45, 0.42, 0.40}
	cSnow := mgl32.Vec3{0.88, 0.88, 0.92}

	switch {
	case h <= water:
		f := clampf((h-(water-2.0))/2.0, 0, 1)
		return lerp3(cUnderDeep, cUnderShal, f)
	case h <= beach:
		f := clampf((h-water)/(beach-water), 0, 1)
		return lerp3(cUnderShal, cBeach, f)
	case h <= grass:
		f := clampf((h-beach)/(grass-beach), 0, 1)
		return lerp3(cBeach, cGrass, f*f)
	case h <= rock:
		f := clampf((h-grass)/(rock-grass), 0, 1)
		return lerp3(cGrass, cRock, f*f)
	default:
		f := clampf((h-rock)/(snow-rock), 0, 1)
		return lerp3(cRock, cSnow, f)
	}
}

func lerp3(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(f))
}
