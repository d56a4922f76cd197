// Package particles simulates a small campfire: a flame column, rising
// embers, and a soft ground glow. The simulation is CPU-side; rendering
// consumes the instance list it produces.
package particles

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind discriminates particle behavior and shading.
type Kind int

const (
	KindFlame Kind = iota
	KindEmber
	KindGlow
)

const (
	// DefaultMaxParticles bounds the combined flame+ember+glow population.
	DefaultMaxParticles = 2000
	minParticles        = 64

	// maxStep caps integration so a hitch does not teleport particles.
	maxStep = 0.05
)

// Particle is the simulation-side state of one billboard.
type Particle struct {
	Pos  mgl32.Vec3
	Vel  mgl32.Vec3
	Life float32
	// Life0 is the initial lifetime, kept so age can be normalized.
	Life0 float32
	Size0 float32
	Seed  float32
	Kind  Kind
}

// Instance is the per-particle payload handed to the GPU.
type Instance struct {
	Pos   mgl32.Vec3
	Size  float32
	Age01 float32
	Seed  float32
	Kind  Kind
}

// Sim owns the particle population and its emitters.
type Sim struct {
	FlameEmitRate float32
	EmberEmitRate float32
	GlowEmitRate  float32

	// BaseRadius is the emission disk radius in world units.
	BaseRadius float32
	BaseHeight float32

	emitter mgl32.Vec3

	particles []Particle
	instances []Instance

	rng *rand.Rand

	flameAcc float32
	emberAcc float32
	glowAcc  float32

	max int
	now float32
}

// NewSim creates a campfire simulation with the default emitter tuning.
// maxParticles below the minimum is raised to it.
func NewSim(maxParticles int, seed int64) *Sim {
	if maxParticles < minParticles {
		maxParticles = minParticles
	}
	return &Sim{
		FlameEmitRate: 140,
		EmberEmitRate: 22,
		GlowEmitRate:  7,
		BaseRadius:    0.18,
		BaseHeight:    0.06,
		particles:     make([]Particle, 0, maxParticles),
		instances:     make([]Instance, 0, maxParticles),
		rng:           rand.New(rand.NewSource(seed)),
		max:           maxParticles,
	}
}

// SetEmitterPosition moves the campfire. Live particles are unaffected.
func (s *Sim) SetEmitterPosition(p mgl32.Vec3) { s.emitter = p }

// Count reports the live particle population.
func (s *Sim) Count() int { return len(s.particles) }

// Instances returns the GPU instance list built by the last Update call.
// The slice is reused between frames.
func (s *Sim) Instances() []Instance { return s.instances }

func (s *Sim) randf(a, b float32) float32 {
	return a + (b-a)*s.rng.Float32()
}

func (s *Sim) randInDisk(radius float32) mgl32.Vec3 {
	a := s.randf(0, 2*math.Pi)
	r := float32(math.Sqrt(float64(s.rng.Float32()))) * radius
	return mgl32.Vec3{float32(math.Cos(float64(a))) * r, 0, float32(math.Sin(float64(a))) * r}
}

func (s *Sim) spawn(kind Kind) {
	if len(s.particles) >= s.max {
		// Replace the oldest so the fire stays lively at the cap.
		copy(s.particles, s.particles[1:])
		s.particles = s.particles[:len(s.particles)-1]
	}

	p := Particle{Kind: kind, Seed: s.randf(0, 1)}

	switch kind {
	case KindFlame:
		disk := s.randInDisk(s.BaseRadius)
		p.Pos = s.emitter.Add(disk).Add(mgl32.Vec3{0, s.randf(0, s.BaseHeight), 0})
		lateral := mgl32.Vec3{s.randf(-0.55, 0.55), 0, s.randf(-0.55, 0.55)}
		p.Vel = lateral.Mul(0.45).Add(mgl32.Vec3{0, s.randf(1.35, 2.35), 0})
		p.Life0 = s.randf(0.55, 1.05)
		p.Size0 = s.randf(0.10, 0.20)
	case KindEmber:
		disk := s.randInDisk(s.BaseRadius * 0.55)
		p.Pos = s.emitter.Add(disk).Add(mgl32.Vec3{0, s.randf(0, s.BaseHeight*0.6), 0})
		lateral := mgl32.Vec3{s.randf(-1, 1), 0, s.randf(-1, 1)}
		p.Vel = lateral.Mul(0.55).Add(mgl32.Vec3{0, s.randf(1.6, 3.2), 0})
		p.Life0 = s.randf(1.0, 2.2)
		p.Size0 = s.randf(0.025, 0.055)
	case KindGlow:
		disk := s.randInDisk(s.BaseRadius * 0.75)
		p.Pos = s.emitter.Add(disk).Add(mgl32.Vec3{0, 0.03, 0})
		p.Life0 = s.randf(0.18, 0.30)
		p.Size0 = s.randf(0.45, 0.70)
	}
	p.Life = p.Life0

	s.particles = append(s.particles, p)
}

// Update advances emitters and live particles by dt seconds. now is absolute
// time, driving the turbulence field and glow flicker. Non-positive dt is a
// no-op; large dt is clamped so the integration stays stable.
func (s *Sim) Update(dt, now float32) {
	if dt <= 0 {
		return
	}
	if dt > maxStep {
		dt = maxStep
	}
	s.now = now

	s.flameAcc += dt * s.FlameEmitRate
	s.emberAcc += dt * s.EmberEmitRate
	s.glowAcc += dt * s.GlowEmitRate

	nFlame := int(s.flameAcc)
	nEmber := int(s.emberAcc)
	nGlow := int(s.glowAcc)
	s.flameAcc -= float32(nFlame)
	s.emberAcc -= float32(nEmber)
	s.glowAcc -= float32(nGlow)

	for i := 0; i < nFlame; i++ {
		s.spawn(KindFlame)
	}
	for i := 0; i < nEmber; i++ {
		s.spawn(KindEmber)
	}
	for i := 0; i < nGlow; i++ {
		s.spawn(KindGlow)
	}

	for i := len(s.particles) - 1; i >= 0; i-- {
		p := &s.particles[i]

		p.Life -= dt
		if p.Life <= 0 {
			s.particles[i] = s.particles[len(s.particles)-1]
			s.particles = s.particles[:len(s.particles)-1]
			continue
		}

		age01 := 1 - p.Life/p.Life0

		t := float64(now*1.2 + p.Seed*17.0)
		turb := mgl32.Vec3{float32(math.Sin(t * 3.1)), 0, float32(math.Cos(t * 2.7))}

		switch p.Kind {
		case KindFlame:
			p.Vel = p.Vel.Add(mgl32.Vec3{0, 2.4, 0}.Mul(dt))
			p.Vel = p.Vel.Add(turb.Mul(1.35 * (1 - age01) * dt))
			p.Vel = p.Vel.Mul(float32(math.Exp(float64(-1.8 * dt))))
		case KindEmber:
			p.Vel = p.Vel.Add(mgl32.Vec3{0, 0.9, 0}.Mul(dt))
			p.Vel = p.Vel.Add(turb.Mul(0.35 * dt))
			p.Vel = p.Vel.Add(mgl32.Vec3{0, -2.2, 0}.Mul(dt))
			p.Vel = p.Vel.Mul(float32(math.Exp(float64(-0.9 * dt))))
		case KindGlow:
			p.Vel = mgl32.Vec3{}
		}

		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	}

	s.buildInstances()
}

func (s *Sim) buildInstances() {
	s.instances = s.instances[:0]
	for i := range s.particles {
		p := &s.particles[i]
		age01 := 1 - p.Life/p.Life0

		size := p.Size0
		switch p.Kind {
		case KindFlame:
			size *= 0.85 + 0.85*age01
		case KindEmber:
			size *= 1 - 0.35*age01
		case KindGlow:
			size *= 0.95 + 0.10*float32(math.Sin(float64(s.now*8.0+p.Seed*30.0)))
		}

		s.instances = append(s.instances, Instance{
			Pos:   p.Pos,
			Size:  size,
			Age01: clamp01(age01),
			Seed:  p.Seed,
			Kind:  p.Kind,
		})
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
