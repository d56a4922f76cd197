// Package environment advances the day/night cycle and exposes a consistent
// per-frame lighting state to every renderer.
package environment

import "math"

// DefaultDayLengthSeconds is one full day/night cycle at default speed.
const DefaultDayLengthSeconds = 30.0

// TimeOfDay is a normalized clock in [0,1). 0.25 is morning, 0.5 noon,
// 0.75 evening, 0.0 midnight.
type TimeOfDay struct {
	time01    float32
	dayLength float32
}

// NewTimeOfDay creates a clock starting at morning.
func NewTimeOfDay(dayLengthSeconds float32) *TimeOfDay {
	if dayLengthSeconds <= 0 {
		dayLengthSeconds = DefaultDayLengthSeconds
	}
	return &TimeOfDay{
		time01:    0.25,
		dayLength: dayLengthSeconds,
	}
}

// Update advances the clock by dt seconds. True modulo wrapping keeps time01
// in [0,1) even if dt spans multiple cycles or runs backward.
func (t *TimeOfDay) Update(dt float32) {
	t.time01 += dt / t.dayLength
	t.time01 = float32(math.Mod(float64(t.time01), 1.0))
	if t.time01 < 0 {
		t.time01 += 1.0
	}
}

// Normalized returns the clock value in [0,1).
func (t *TimeOfDay) Normalized() float32 {
	return t.time01
}

// Hours returns the clock as a 24-hour value.
func (t *TimeOfDay) Hours() float32 {
	return t.time01 * 24.0
}

// SetNormalized jumps the clock to a specific time, wrapping into [0,1).
func (t *TimeOfDay) SetNormalized(v float32) {
	v = float32(math.Mod(float64(v), 1.0))
	if v < 0 {
		v += 1.0
	}
	t.time01 = v
}
