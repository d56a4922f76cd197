package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/camera"
	"github.com/emberisle/emberisle/internal/engine/terrain"
)

// Character proportions in "pixel" units, 8 pixels per head.
const (
	playerUnit = 0.10

	headSize  = 8 * playerUnit
	bodyW     = 8 * playerUnit
	bodyH     = 12 * playerUnit
	bodyD     = 4 * playerUnit
	limbW     = 4 * playerUnit
	limbH     = 12 * playerUnit
	limbD     = 4 * playerUnit
	plateT    = playerUnit * 0.04
	edgeGuard = 0.2 // keep-out margin from the terrain edge
	footLift  = 0.02
)

var (
	skinColor  = mgl32.Vec3{0.93, 0.80, 0.66}
	hairColor  = mgl32.Vec3{0.20, 0.13, 0.06}
	shirtColor = mgl32.Vec3{0.20, 0.55, 0.90}
	pantsColor = mgl32.Vec3{0.20, 0.20, 0.55}
	shoeColor  = mgl32.Vec3{0.10, 0.10, 0.12}
	eyeWhite   = mgl32.Vec3{0.95, 0.95, 0.95}
	eyeBlue    = mgl32.Vec3{0.10, 0.20, 0.60}
	mouthColor = mgl32.Vec3{0.35, 0.20, 0.18}
)

// Part is one cube of the character: a transform for the shared unit cube
// and a tint.
type Part struct {
	Model mgl32.Mat4
	Tint  mgl32.Vec3
}

// MoveInput is the WASD state for one frame, already reduced to axes.
type MoveInput struct {
	Forward float32 // +1 forward, -1 back
	Right   float32 // +1 right, -1 left
}

// Player is the box-part character. It moves relative to the camera, sticks
// to the terrain and swings its limbs while walking.
type Player struct {
	Position mgl32.Vec3
	YawDeg   float32

	MoveSpeed   float32
	MaxSwingDeg float32

	walkPhase float32
	swingDeg  float32

	headYawDeg      float32
	headMaxYawDeg   float32
	headPitchScale  float32
	headMaxPitchDeg float32
	headPitchDeg    float32
}

// NewPlayer creates a player standing at the origin.
func NewPlayer() *Player {
	return &Player{
		MoveSpeed:       2.5,
		MaxSwingDeg:     35.0,
		headMaxYawDeg:   70.0,
		headPitchScale:  0.35,
		headMaxPitchDeg: 25.0,
	}
}

// Update advances movement and animation by dt seconds. Movement is relative
// to the camera's ground-plane basis; the body turns to face the movement
// direction and the head keeps tracking the camera with damped yaw.
func (p *Player) Update(in MoveInput, dt float32, tr *terrain.Terrain, cam *camera.Orbit) {
	camFwd := groundDir(cam.Forward(), mgl32.Vec3{0, 0, -1})
	camRight := groundDir(cam.Right(), mgl32.Vec3{1, 0, 0})

	moveDir := camFwd.Mul(in.Forward).Add(camRight.Mul(in.Right))
	mLen := float32(math.Hypot(float64(moveDir.X()), float64(moveDir.Z())))
	moving := mLen > 1e-4

	camYawDeg := mgl32.RadToDeg(float32(math.Atan2(float64(camFwd.X()), float64(camFwd.Z()))))

	if moving {
		moveDir = mgl32.Vec3{moveDir.X() / mLen, 0, moveDir.Z() / mLen}

		// Body snaps to the movement direction.
		p.YawDeg = mgl32.RadToDeg(float32(math.Atan2(float64(moveDir.X()), float64(moveDir.Z()))))

		p.Position = p.Position.Add(moveDir.Mul(p.MoveSpeed * dt))

		p.walkPhase += p.MoveSpeed * dt * 6.0
		p.swingDeg = float32(math.Sin(float64(p.walkPhase))) * p.MaxSwingDeg
	} else {
		// Limbs settle back to neutral.
		p.swingDeg = dampTo(p.swingDeg, 0, 12.0, dt)
	}

	p.Position = mgl32.Vec3{
		clampf(p.Position.X(), tr.MinX()+edgeGuard, tr.MaxX()-edgeGuard),
		p.Position.Y(),
		clampf(p.Position.Z(), tr.MinZ()+edgeGuard, tr.MaxZ()-edgeGuard),
	}

	groundY := tr.GetHeight(p.Position.X(), p.Position.Z())
	p.Position = mgl32.Vec3{p.Position.X(), groundY + footLift, p.Position.Z()}

	// Head tracks the camera, clamped and damped. The follow constant is
	// higher while moving so the head does not lag behind turns.
	targetHeadYaw := clampf(wrapAngleDeg(camYawDeg-p.YawDeg), -p.headMaxYawDeg, p.headMaxYawDeg)
	k := float32(4.0)
	if moving {
		k = 18.0
	}
	p.headYawDeg = dampAngleDeg(p.headYawDeg, targetHeadYaw, k, dt)
	p.headPitchDeg = clampf(cam.PitchDeg*p.headPitchScale, -p.headMaxPitchDeg, p.headMaxPitchDeg)
}

// Parts builds the flat list of cube transforms for the current pose,
// root-to-leaf composed so each entry is a finished world transform.
func (p *Player) Parts() []Part {
	parts := make([]Part, 0, 16)

	root := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(p.YawDeg)))

	torsoPivot := root.Mul4(mgl32.Translate3D(0, limbH+bodyH*0.5, 0))

	add := func(m mgl32.Mat4, tint mgl32.Vec3) {
		parts = append(parts, Part{Model: m, Tint: tint})
	}

	// Torso.
	add(torsoPivot.Mul4(mgl32.Scale3D(bodyW, bodyH, bodyD)), shirtColor)

	// Head joint at the neck, rotated by the damped look angles.
	headJoint := torsoPivot.
		Mul4(mgl32.Translate3D(0, bodyH*0.5, 0)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(p.headYawDeg))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(p.headPitchDeg)))

	add(headJoint.
		Mul4(mgl32.Translate3D(0, headSize*0.5, 0)).
		Mul4(mgl32.Scale3D(headSize, headSize, headSize)), skinColor)

	// Hair shell, slightly larger than the head.
	add(headJoint.
		Mul4(mgl32.Translate3D(0, headSize*0.5, 0)).
		Mul4(mgl32.Scale3D(headSize*1.04, headSize*1.04, headSize*1.04)), hairColor)

	// Face plates: thin boxes on the front of the head.
	faceZ := float32(headSize*0.5 + playerUnit*0.50)
	plate := func(tint mgl32.Vec3, sx, sy, px, py, pz float32) {
		add(headJoint.
			Mul4(mgl32.Translate3D(px, py, pz)).
			Mul4(mgl32.Scale3D(sx, sy, plateT)), tint)
	}
	plate(eyeWhite, playerUnit*1.4, playerUnit*1.0, -playerUnit*1.6, headSize*0.65, faceZ)
	plate(eyeBlue, playerUnit*0.5, playerUnit*0.5, -playerUnit*1.4, headSize*0.65, faceZ+plateT*0.5)
	plate(eyeWhite, playerUnit*1.4, playerUnit*1.0, playerUnit*1.6, headSize*0.65, faceZ)
	plate(eyeBlue, playerUnit*0.5, playerUnit*0.5, playerUnit*1.4, headSize*0.65, faceZ+plateT*0.5)
	plate(mouthColor, playerUnit*2.2, playerUnit*0.6, 0, headSize*0.40, faceZ)

	// Arms swing opposite each other, legs opposite the arms.
	shoulderY := float32(bodyH*0.5 - playerUnit*1.0)
	shoulderX := float32(bodyW*0.5 + limbW*0.5)
	swing := mgl32.DegToRad(p.swingDeg)

	limb := func(jointX, jointY, rotX float32, tint mgl32.Vec3) mgl32.Mat4 {
		joint := torsoPivot.
			Mul4(mgl32.Translate3D(jointX, jointY, 0)).
			Mul4(mgl32.HomogRotate3DX(rotX))
		add(joint.
			Mul4(mgl32.Translate3D(0, -limbH*0.5, 0)).
			Mul4(mgl32.Scale3D(limbW, limbH, limbD)), tint)
		return joint
	}

	limb(-shoulderX, shoulderY, swing, skinColor)
	limb(shoulderX, shoulderY, -swing, skinColor)

	hipY := float32(-bodyH * 0.5)
	hipX := float32(limbW * 0.5)
	leftLeg := limb(-hipX, hipY, -swing, pantsColor)
	rightLeg := limb(hipX, hipY, swing, pantsColor)

	// Shoes: thin darker layer at the bottom of each leg.
	for _, legJoint := range []mgl32.Mat4{leftLeg, rightLeg} {
		add(legJoint.
			Mul4(mgl32.Translate3D(0, -limbH+playerUnit, 0)).
			Mul4(mgl32.Scale3D(limbW*1.02, playerUnit*2.0, limbD*1.02)), shoeColor)
	}

	return parts
}

func groundDir(v, fallback mgl32.Vec3) mgl32.Vec3 {
	flat := mgl32.Vec3{v.X(), 0, v.Z()}
	l := flat.Len()
	if l < 1e-4 {
		return fallback
	}
	return flat.Mul(1 / l)
}

func wrapAngleDeg(a float32) float32 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

func dampTo(cur, target, k, dt float32) float32 {
	return cur + (target-cur)*(1-float32(math.Exp(float64(-k*dt))))
}

func dampAngleDeg(cur, target, k, dt float32) float32 {
	delta := wrapAngleDeg(target - cur)
	return cur + delta*(1-float32(math.Exp(float64(-k*dt))))
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
