// Package water provides water plane geometry and the reflection-pass
// conventions (clip planes, target sizing) shared by every shader that draws
// reflectable geometry.
package water

import "github.com/go-gl/mathgl/mgl32"

// DefaultSegments is the tessellation of the water plane per axis. The
// vertex shader displaces these vertices to animate waves, so the plane
// needs real geometry rather than a single quad.
const DefaultSegments = 220

// ClipEpsilon nudges the reflection clip plane below the water line to avoid
// seam artifacts where terrain meets water.
const ClipEpsilon = 0.02

// PlaneStride is floats per water vertex: position (3) + normal (3) + uv (2).
const PlaneStride = 8

// Plane is the CPU-side tessellated water surface. Vertex Y is zero; the
// actual water height is applied in the vertex shader.
type Plane struct {
	Vertices []float32
}

// VertexCount returns the number of vertices in the plane mesh.
func (p *Plane) VertexCount() int {
	return len(p.Vertices) / PlaneStride
}

// BuildPlane tessellates a horizontal quad over the given bounds into
// segX x segZ cells of two triangles each.
func BuildPlane(minX, maxX, minZ, maxZ float32, segX, segZ int) *Plane {
	segX = clampi(segX, 1, 1024)
	segZ = clampi(segZ, 1, 1024)

	v := make([]float32, 0, segX*segZ*6*PlaneStride)
	push := func(x, z, u, t float32) {
		v = append(v, x, 0, z, 0, 1, 0, u, t)
	}
	lerp := func(a, b, t float32) float32 { return a + (b-a)*t }

	for z := 0; z < segZ; z++ {
		tz0 := float32(z) / float32(segZ)
		tz1 := float32(z+1) / float32(segZ)
		z0 := lerp(minZ, maxZ, tz0)
		z1 := lerp(minZ, maxZ, tz1)

		for x := 0; x < segX; x++ {
			tx0 := float32(x) / float32(segX)
			tx1 := float32(x+1) / float32(segX)
			x0 := lerp(minX, maxX, tx0)
			x1 := lerp(minX, maxX, tx1)

			push(x0, z0, tx0, tz0)
			push(x1, z0, tx1, tz0)
			push(x1, z1, tx1, tz1)

			push(x0, z0, tx0, tz0)
			push(x1, z1, tx1, tz1)
			push(x0, z1, tx0, tz1)
		}
	}

	return &Plane{Vertices: v}
}

// ReflectionSize returns the offscreen target dimensions for a main
// framebuffer size: half resolution, never below 1x1. Reflection sharpness
// is traded for fill rate.
func ReflectionSize(fbWidth, fbHeight int) (int, int) {
	w := fbWidth / 2
	h := fbHeight / 2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ClipPlane is a world-space half-space test A*x + B*y + C*z + D >= 0.
// Fragments failing the test are discarded during the reflection pass.
type ClipPlane mgl32.Vec4

// ClipAbove keeps geometry above the water line (with ClipEpsilon of slack)
// for rendering into the reflection target.
func ClipAbove(waterY float32) ClipPlane {
	return ClipPlane{0, 1, 0, -waterY + ClipEpsilon}
}

// ClipPassThrough passes all realistic world-space geometry. Every frame must
// reset to this after the reflection pass, or clipping leaks into the main
// pass and silently hides geometry.
func ClipPassThrough() ClipPlane {
	return ClipPlane{0, 1, 0, 1e6}
}

// Allows reports whether a world-space point passes the half-space test.
func (p ClipPlane) Allows(point mgl32.Vec3) bool {
	return p[0]*point.X()+p[1]*point.Y()+p[2]*point.Z()+p[3] >= 0
}

// Vec4 returns the plane as a vector for uniform upload.
func (p ClipPlane) Vec4() mgl32.Vec4 {
	return mgl32.Vec4(p)
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
