package particles

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestUpdateEmitsAtConfiguredRates(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 1)
	// One 50ms step: 140*0.05=7 flames, 22*0.05=1.1 embers, 7*0.05=0.35 glow.
	s.Update(0.05, 0)

	if got := s.Count(); got != 8 {
		t.Fatalf("particle count after one step: got %d, want 8", got)
	}
}

func TestEmitAccumulatorCarriesFraction(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 1)
	s.EmberEmitRate = 0
	s.GlowEmitRate = 0
	s.FlameEmitRate = 10

	// 10/s at 30ms steps: 0.3 per step, first spawn on the fourth step.
	for i := 0; i < 3; i++ {
		s.Update(0.03, float32(i)*0.03)
	}
	if s.Count() != 0 {
		t.Fatalf("spawned too early: %d particles", s.Count())
	}
	s.Update(0.03, 0.12)
	if s.Count() != 1 {
		t.Fatalf("accumulator lost fraction: got %d particles, want 1", s.Count())
	}
}

func TestParticlesExpire(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 1)
	s.Update(0.05, 0)
	if s.Count() == 0 {
		t.Fatal("no particles spawned")
	}

	s.FlameEmitRate = 0
	s.EmberEmitRate = 0
	s.GlowEmitRate = 0

	// Max lifetime in the system is 2.2s; step well past it.
	now := float32(0.05)
	for i := 0; i < 100; i++ {
		s.Update(0.05, now)
		now += 0.05
	}
	if got := s.Count(); got != 0 {
		t.Errorf("particles survived past max lifetime: %d", got)
	}
}

func TestPopulationStaysWithinBudget(t *testing.T) {
	s := NewSim(minParticles, 1)
	for i := 0; i < 200; i++ {
		s.Update(0.05, float32(i)*0.05)
	}
	if got := s.Count(); got > minParticles {
		t.Errorf("population %d exceeds budget %d", got, minParticles)
	}
	if got := s.Count(); got == 0 {
		t.Error("steady-state fire went out")
	}
}

func TestBudgetFloorApplied(t *testing.T) {
	s := NewSim(1, 1)
	if s.max != minParticles {
		t.Errorf("max = %d, want floor %d", s.max, minParticles)
	}
}

func TestLargeStepClamped(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 1)
	s.Update(5.0, 0)

	// A clamped 50ms step emits 8, not 140*5.
	if got := s.Count(); got != 8 {
		t.Errorf("hitch frame emitted %d particles, want 8", got)
	}
}

func TestNonPositiveStepIsNoOp(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 1)
	s.Update(0, 0)
	s.Update(-1, 0)
	if s.Count() != 0 {
		t.Errorf("non-positive dt spawned %d particles", s.Count())
	}
}

func TestInstancesMatchPopulation(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 1)
	s.SetEmitterPosition(mgl32.Vec3{3, 1, -2})
	for i := 0; i < 20; i++ {
		s.Update(0.03, float32(i)*0.03)
	}

	inst := s.Instances()
	if len(inst) != s.Count() {
		t.Fatalf("instance count %d != population %d", len(inst), s.Count())
	}
	for i, g := range inst {
		if g.Age01 < 0 || g.Age01 > 1 {
			t.Errorf("instance %d age %v outside [0,1]", i, g.Age01)
		}
		if g.Size <= 0 {
			t.Errorf("instance %d has non-positive size %v", i, g.Size)
		}
		if g.Kind != KindFlame && g.Kind != KindEmber && g.Kind != KindGlow {
			t.Errorf("instance %d has unknown kind %d", i, g.Kind)
		}
	}
}

func TestEmitterPositionAnchorsSpawns(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 1)
	origin := mgl32.Vec3{10, 2, 10}
	s.SetEmitterPosition(origin)
	s.Update(0.05, 0)

	for i, g := range s.Instances() {
		d := g.Pos.Sub(origin)
		horiz := mgl32.Vec3{d.X(), 0, d.Z()}.Len()
		if horiz > s.BaseRadius+0.2 {
			t.Errorf("particle %d spawned %v from emitter, outside disk", i, horiz)
		}
	}
}

func TestFlamesRise(t *testing.T) {
	s := NewSim(DefaultMaxParticles, 2)
	s.EmberEmitRate = 0
	s.GlowEmitRate = 0
	s.Update(0.05, 0)

	before := make([]float32, s.Count())
	for i, g := range s.Instances() {
		before[i] = g.Pos.Y()
	}

	s.FlameEmitRate = 0
	s.Update(0.05, 0.05)

	inst := s.Instances()
	if len(inst) != len(before) {
		t.Fatalf("population changed: %d -> %d", len(before), len(inst))
	}
	for i, g := range inst {
		if g.Pos.Y() <= before[i] {
			t.Errorf("flame %d fell: %v -> %v", i, before[i], g.Pos.Y())
		}
	}
}
