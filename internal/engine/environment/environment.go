package environment

import "github.com/emberisle/emberisle/internal/engine/lighting"

// Environment couples the day/night clock with the derived lighting state so
// every renderer in a frame sees the same sun.
type Environment struct {
	clock *TimeOfDay
	state lighting.State
}

// New creates an environment with the given cycle length in seconds.
func New(dayLengthSeconds float32) *Environment {
	e := &Environment{
		clock: NewTimeOfDay(dayLengthSeconds),
	}
	e.state = lighting.Compute(e.clock.Normalized())
	return e
}

// Update advances time and recomputes the lighting state. Call once per
// frame, before any render pass.
func (e *Environment) Update(dt float32) {
	e.clock.Update(dt)
	e.state = lighting.Compute(e.clock.Normalized())
}

// Time returns the day/night clock.
func (e *Environment) Time() *TimeOfDay {
	return e.clock
}

// Lighting returns the lighting snapshot for the current frame.
func (e *Environment) Lighting() lighting.State {
	return e.state
}
