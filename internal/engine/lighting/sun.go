// Package lighting derives the directional sun light and ambient term from
// the time of day.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DirectionalLight is the sun. Direction points toward the sun; consumers
// normalize again before use.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Ambient is the scene-wide fill term, kept much dimmer than the sun so the
// day/night contrast survives.
type Ambient struct {
	Color     mgl32.Vec3
	Intensity float32
}

// State is the full lighting snapshot for one frame. It is a pure projection
// of time01, recomputed every frame rather than incrementally updated.
type State struct {
	Time01        float32
	DayFactor     float32
	HorizonFactor float32
	Sun           DirectionalLight
	Amb           Ambient
}

// Tunables for the day/night curve. The transition is deliberately stylized,
// not physical: squared ramps give a steeper night/day edge, and intensity
// never reaches zero so midnight stays readable.
const (
	sunriseOffset = 0.25 // time01 at which the sun crosses the horizon

	dayRampBias  = 0.02
	dayRampSpan  = 0.35
	horizonBand  = 0.25
	duskBlendMax = 0.75

	sunIntensityFloor = 0.1
	sunIntensityGain  = 2.2

	ambIntensityFloor = 0.02
	ambIntensityGain  = 0.35
)

// Compute maps a normalized time of day to the sun and ambient state.
func Compute(time01 float32) State {
	theta := float64(time01-sunriseOffset) * 2 * math.Pi

	// Elevation sweeps -1 at midnight to +1 at noon; the horizontal
	// components trace a closed loop over the cycle. The small fixed Z keeps
	// the light from ever lying exactly in the XY plane.
	elev := float32(math.Sin(theta))
	dir := mgl32.Vec3{float32(math.Cos(theta)), elev, 0.35}.Normalize()

	day := clamp01((elev - dayRampBias) / dayRampSpan)
	day = day * day

	horizon := 1.0 - clamp01(float32(math.Abs(float64(elev)))/horizonBand)
	horizon = horizon * horizon

	noon := mgl32.Vec3{1.0, 0.97, 0.92}
	dusk := mgl32.Vec3{1.0, 0.45, 0.20}
	sunColor := mix3(noon, dusk, duskBlendMax*horizon)

	ambColor := mix3(mgl32.Vec3{0.03, 0.04, 0.07}, mgl32.Vec3{0.35, 0.38, 0.40}, day)

	return State{
		Time01:        time01,
		DayFactor:     day,
		HorizonFactor: horizon,
		Sun: DirectionalLight{
			Direction: dir,
			Color:     sunColor,
			Intensity: sunIntensityFloor + sunIntensityGain*day,
		},
		Amb: Ambient{
			Color:     ambColor,
			Intensity: ambIntensityFloor + ambIntensityGain*day,
		},
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func mix3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
