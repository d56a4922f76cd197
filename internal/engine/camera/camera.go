// Package camera provides the third-person orbit camera and the mirrored
// variant used by the water reflection pass.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit follows a target from behind, rotating on right-mouse drag and
// zooming on scroll.
type Orbit struct {
	// Orbit angles in degrees. Yaw 180 starts behind the character.
	YawDeg   float32
	PitchDeg float32

	Distance    float32
	MinDistance float32
	MaxDistance float32

	// Pivot height above the target (look-at point).
	Height float32

	MinPitchDeg float32
	MaxPitchDeg float32

	MouseSensitivity float32
	ZoomSpeed        float32

	// Computed by Follow.
	Position mgl32.Vec3
	Pivot    mgl32.Vec3
}

// NewOrbit creates an orbit camera with character-scale defaults.
func NewOrbit() *Orbit {
	return &Orbit{
		YawDeg:           180.0,
		PitchDeg:         20.0,
		Distance:         6.0,
		MinDistance:      2.0,
		MaxDistance:      12.0,
		Height:           1.3,
		MinPitchDeg:      -20.0,
		MaxPitchDeg:      75.0,
		MouseSensitivity: 0.12,
		ZoomSpeed:        0.6,
	}
}

// HandleDrag rotates the camera by a mouse delta in pixels.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.YawDeg += deltaX * c.MouseSensitivity
	c.PitchDeg -= deltaY * c.MouseSensitivity
	c.PitchDeg = clampf(c.PitchDeg, c.MinPitchDeg, c.MaxPitchDeg)
}

// HandleZoom adjusts the orbit distance by a scroll delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance -= delta * c.ZoomSpeed
	c.Distance = clampf(c.Distance, c.MinDistance, c.MaxDistance)
}

// forwardFromAngles returns the look direction; yaw -90 faces -Z.
func (c *Orbit) forwardFromAngles() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.YawDeg))
	pitch := float64(mgl32.DegToRad(c.PitchDeg))

	return mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

// Follow recomputes pivot and position around the target's world position.
func (c *Orbit) Follow(target mgl32.Vec3) {
	c.Pivot = target.Add(mgl32.Vec3{0, c.Height, 0})
	fwd := c.forwardFromAngles()
	c.Position = c.Pivot.Sub(fwd.Mul(c.Distance))
}

// ViewMatrix returns the view matrix looking from the camera to its pivot.
func (c *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Pivot, mgl32.Vec3{0, 1, 0})
}

// Forward returns the unit direction from the camera to its pivot.
func (c *Orbit) Forward() mgl32.Vec3 {
	f := c.Pivot.Sub(c.Position)
	if f.Len() < 1e-6 {
		return mgl32.Vec3{0, 0, -1}
	}
	return f.Normalize()
}

// Right returns the camera's right direction on the world XZ plane.
func (c *Orbit) Right() mgl32.Vec3 {
	r := c.Forward().Cross(mgl32.Vec3{0, 1, 0})
	if r.Len() < 1e-6 {
		return mgl32.Vec3{1, 0, 0}
	}
	return r.Normalize()
}

// Up returns the camera's up direction, used to orient billboards.
func (c *Orbit) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// Mirrored returns a copy of the camera reflected across the horizontal plane
// y = planeY. Sampling the mirrored view through the water plane approximates
// a physical mirror reflection.
func (c *Orbit) Mirrored(planeY float32) *Orbit {
	m := *c
	m.Position[1] = 2*planeY - c.Position[1]
	m.Pivot[1] = 2*planeY - c.Pivot[1]
	return &m
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
