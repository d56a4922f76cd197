package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/camera"
	"github.com/emberisle/emberisle/internal/engine/terrain"
)

func testTerrain(t *testing.T) *terrain.Terrain {
	t.Helper()
	tr, err := terrain.New(32, 32, 1.0)
	if err != nil {
		t.Fatalf("terrain: %v", err)
	}
	tr.Build(0.08, 2.0, 7)
	return tr
}

func TestPlayerSticksToGround(t *testing.T) {
	tr := testTerrain(t)
	p := NewPlayer()
	cam := camera.NewOrbit()

	p.Update(MoveInput{}, 0.016, tr, cam)

	want := tr.GetHeight(p.Position.X(), p.Position.Z()) + footLift
	if math.Abs(float64(p.Position.Y()-want)) > 1e-5 {
		t.Errorf("player y = %v, want %v", p.Position.Y(), want)
	}
}

func TestPlayerMovesCameraRelative(t *testing.T) {
	tr := testTerrain(t)
	p := NewPlayer()
	cam := camera.NewOrbit()
	cam.Follow(p.Position)

	start := p.Position
	for i := 0; i < 30; i++ {
		p.Update(MoveInput{Forward: 1}, 0.016, tr, cam)
	}

	moved := p.Position.Sub(start)
	planar := mgl32.Vec3{moved.X(), 0, moved.Z()}
	if planar.Len() < 0.5 {
		t.Fatalf("player barely moved: %v", planar.Len())
	}

	// Forward input must track the camera's ground-plane forward.
	fwd := cam.Forward()
	flat := mgl32.Vec3{fwd.X(), 0, fwd.Z()}.Normalize()
	if planar.Normalize().Dot(flat) < 0.99 {
		t.Errorf("moved %v, camera forward %v", planar.Normalize(), flat)
	}
}

func TestPlayerFacesMovementDirection(t *testing.T) {
	tr := testTerrain(t)
	p := NewPlayer()
	cam := camera.NewOrbit()

	p.Update(MoveInput{Forward: 1}, 0.016, tr, cam)

	fwd := cam.Forward()
	wantYaw := mgl32.RadToDeg(float32(math.Atan2(float64(fwd.X()), float64(fwd.Z()))))
	got := wrapAngleDeg(p.YawDeg - wantYaw)
	if math.Abs(float64(got)) > 1 {
		t.Errorf("body yaw %v, want about %v", p.YawDeg, wantYaw)
	}
}

func TestPlayerClampedToBounds(t *testing.T) {
	tr := testTerrain(t)
	p := NewPlayer()
	cam := camera.NewOrbit()

	p.Position = mgl32.Vec3{1000, 0, -1000}
	p.Update(MoveInput{}, 0.016, tr, cam)

	if p.Position.X() > tr.MaxX()-edgeGuard+1e-5 {
		t.Errorf("x %v beyond max bound %v", p.Position.X(), tr.MaxX()-edgeGuard)
	}
	if p.Position.Z() < tr.MinZ()+edgeGuard-1e-5 {
		t.Errorf("z %v beyond min bound %v", p.Position.Z(), tr.MinZ()+edgeGuard)
	}
}

func TestPlayerLimbSwingDecaysWhenIdle(t *testing.T) {
	tr := testTerrain(t)
	p := NewPlayer()
	cam := camera.NewOrbit()

	// Walk to build up a swing, then idle.
	for i := 0; i < 10; i++ {
		p.Update(MoveInput{Forward: 1}, 0.03, tr, cam)
	}
	for i := 0; i < 200 && p.swingDeg != 0; i++ {
		p.Update(MoveInput{}, 0.03, tr, cam)
	}

	if math.Abs(float64(p.swingDeg)) > 0.5 {
		t.Errorf("swing %v did not settle", p.swingDeg)
	}
}

func TestPlayerPartsPose(t *testing.T) {
	p := NewPlayer()
	parts := p.Parts()

	if len(parts) != 14 {
		t.Fatalf("got %d parts, want 14", len(parts))
	}

	for i, part := range parts {
		if part.Tint.Len() == 0 {
			t.Errorf("part %d has zero tint", i)
		}
		// Transforms must keep w=1 affine structure.
		if part.Model.At(3, 3) != 1 {
			t.Errorf("part %d transform not affine", i)
		}
	}
}

func TestPlayerPartsFollowPosition(t *testing.T) {
	p := NewPlayer()
	p.Position = mgl32.Vec3{5, 1, -3}
	parts := p.Parts()

	// Torso is the first part; its translation column carries the world
	// position plus the torso pivot height.
	torso := parts[0].Model
	if math.Abs(float64(torso.At(0, 3)-5)) > 1e-5 {
		t.Errorf("torso x = %v, want 5", torso.At(0, 3))
	}
	if math.Abs(float64(torso.At(2, 3)+3)) > 1e-5 {
		t.Errorf("torso z = %v, want -3", torso.At(2, 3))
	}
	if torso.At(1, 3) <= 1 {
		t.Errorf("torso y = %v, want above player y", torso.At(1, 3))
	}
}

func TestWrapAngleDeg(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0, 0},
		{180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{-360, 0},
		{540, 180},
	}
	for _, c := range cases {
		if got := wrapAngleDeg(c.in); math.Abs(float64(got-c.want)) > 1e-4 {
			t.Errorf("wrapAngleDeg(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
