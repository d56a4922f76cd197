package environment

import (
	"math"
	"testing"
)

func TestUpdateWrapsPastOne(t *testing.T) {
	clock := NewTimeOfDay(30.0)
	clock.SetNormalized(0.95)

	clock.Update(3.0) // adds 0.1
	got := clock.Normalized()
	if math.Abs(float64(got)-0.05) > 1e-5 {
		t.Errorf("time01 after wrap = %v, want ~0.05", got)
	}
}

func TestUpdateWrapsMultipleCycles(t *testing.T) {
	clock := NewTimeOfDay(10.0)
	clock.SetNormalized(0.5)

	// 25 seconds is 2.5 cycles: 0.5 + 2.5 wraps to 0.0.
	clock.Update(25.0)
	got := clock.Normalized()
	if math.Abs(float64(got)) > 1e-4 && math.Abs(float64(got)-1.0) > 1e-4 {
		t.Errorf("time01 after multi-cycle dt = %v, want ~0.0", got)
	}
	if got >= 1.0 {
		t.Errorf("time01 = %v, want < 1", got)
	}
}

func TestUpdateNegativeDtWrapsBackward(t *testing.T) {
	clock := NewTimeOfDay(10.0)
	clock.SetNormalized(0.1)

	clock.Update(-2.0) // subtracts 0.2
	got := clock.Normalized()
	if math.Abs(float64(got)-0.9) > 1e-5 {
		t.Errorf("time01 after backward step = %v, want ~0.9", got)
	}
}

func TestUpdateStaysInRange(t *testing.T) {
	clock := NewTimeOfDay(30.0)
	for i := 0; i < 10000; i++ {
		clock.Update(0.016)
		v := clock.Normalized()
		if v < 0 || v >= 1 {
			t.Fatalf("time01 = %v after %d updates, want [0,1)", v, i)
		}
	}
}

func TestDefaultsToMorning(t *testing.T) {
	clock := NewTimeOfDay(30.0)
	if got := clock.Normalized(); got != 0.25 {
		t.Errorf("initial time01 = %v, want 0.25", got)
	}
	if got := clock.Hours(); got != 6.0 {
		t.Errorf("initial hours = %v, want 6", got)
	}
}

func TestEnvironmentUpdateRefreshesLighting(t *testing.T) {
	env := New(30.0)
	before := env.Lighting()

	env.Update(7.5) // quarter cycle: morning to noon
	after := env.Lighting()

	if after.Time01 == before.Time01 {
		t.Error("lighting state time01 did not advance")
	}
	if after.Sun.Intensity <= before.Sun.Intensity {
		t.Errorf("sun intensity %v -> %v, want increase toward noon", before.Sun.Intensity, after.Sun.Intensity)
	}
}
