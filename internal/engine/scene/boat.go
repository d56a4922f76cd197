package scene

import "github.com/go-gl/mathgl/mgl32"

// boatStride is floats per hull vertex: position, normal, color.
const boatStride = 9

// hullStation is one cross-section of the hull along its length.
type hullStation struct {
	z          float32
	halfBottom float32
	halfTop    float32
	yBottom    float32
	yTop       float32
}

var hullProfile = []hullStation{
	{z: -1.2, halfBottom: 0.02, halfTop: 0.06, yBottom: 0.16, yTop: 0.30}, // stern tip
	{z: -0.9, halfBottom: 0.18, halfTop: 0.30, yBottom: 0.02, yTop: 0.30},
	{z: -0.3, halfBottom: 0.26, halfTop: 0.38, yBottom: 0.00, yTop: 0.32},
	{z: 0.3, halfBottom: 0.26, halfTop: 0.38, yBottom: 0.00, yTop: 0.32},
	{z: 0.9, halfBottom: 0.18, halfTop: 0.30, yBottom: 0.02, yTop: 0.30},
	{z: 1.2, halfBottom: 0.02, halfTop: 0.06, yBottom: 0.16, yTop: 0.34}, // bow tip
}

var (
	hullWood = mgl32.Vec3{0.45, 0.29, 0.16}
	hullTrim = mgl32.Vec3{0.58, 0.40, 0.24}
)

// BuildBoatHull generates a small rowboat hull as a flat triangle list,
// boatStride floats per vertex. The hull is modeled in local space with the
// keel near y=0 and the bow toward +Z.
func BuildBoatHull() []float32 {
	var verts []float32

	quad := func(a, b, c, d mgl32.Vec3, color mgl32.Vec3) {
		n := faceNormal(a, b, c)
		for _, p := range []mgl32.Vec3{a, b, c, a, c, d} {
			verts = append(verts,
				p.X(), p.Y(), p.Z(),
				n.X(), n.Y(), n.Z(),
				color.X(), color.Y(), color.Z())
		}
	}

	for i := 0; i+1 < len(hullProfile); i++ {
		s0 := hullProfile[i]
		s1 := hullProfile[i+1]

		// Bottom strip.
		quad(
			mgl32.Vec3{-s0.halfBottom, s0.yBottom, s0.z},
			mgl32.Vec3{s0.halfBottom, s0.yBottom, s0.z},
			mgl32.Vec3{s1.halfBottom, s1.yBottom, s1.z},
			mgl32.Vec3{-s1.halfBottom, s1.yBottom, s1.z},
			hullWood)

		// Starboard side.
		quad(
			mgl32.Vec3{s0.halfBottom, s0.yBottom, s0.z},
			mgl32.Vec3{s0.halfTop, s0.yTop, s0.z},
			mgl32.Vec3{s1.halfTop, s1.yTop, s1.z},
			mgl32.Vec3{s1.halfBottom, s1.yBottom, s1.z},
			hullWood)

		// Port side.
		quad(
			mgl32.Vec3{-s0.halfTop, s0.yTop, s0.z},
			mgl32.Vec3{-s0.halfBottom, s0.yBottom, s0.z},
			mgl32.Vec3{-s1.halfBottom, s1.yBottom, s1.z},
			mgl32.Vec3{-s1.halfTop, s1.yTop, s1.z},
			hullWood)

		// Gunwale strips close the top edge on both sides.
		quad(
			mgl32.Vec3{s0.halfTop, s0.yTop, s0.z},
			mgl32.Vec3{s0.halfTop * 0.8, s0.yTop, s0.z},
			mgl32.Vec3{s1.halfTop * 0.8, s1.yTop, s1.z},
			mgl32.Vec3{s1.halfTop, s1.yTop, s1.z},
			hullTrim)
		quad(
			mgl32.Vec3{-s0.halfTop * 0.8, s0.yTop, s0.z},
			mgl32.Vec3{-s0.halfTop, s0.yTop, s0.z},
			mgl32.Vec3{-s1.halfTop, s1.yTop, s1.z},
			mgl32.Vec3{-s1.halfTop * 0.8, s1.yTop, s1.z},
			hullTrim)
	}

	// Center seat plank.
	quad(
		mgl32.Vec3{-0.3, 0.2, -0.12},
		mgl32.Vec3{0.3, 0.2, -0.12},
		mgl32.Vec3{0.3, 0.2, 0.12},
		mgl32.Vec3{-0.3, 0.2, 0.12},
		hullTrim)

	return verts
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-8 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
