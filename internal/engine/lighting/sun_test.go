package lighting

import (
	"math"
	"testing"
)

func TestNoonElevationMax(t *testing.T) {
	s := Compute(0.5)
	if s.Sun.Direction.Y() < 0.9 {
		t.Errorf("noon sun elevation = %v, want near max", s.Sun.Direction.Y())
	}
	if got, want := s.Sun.Intensity, float32(sunIntensityFloor+sunIntensityGain); math.Abs(float64(got-want)) > 0.05 {
		t.Errorf("noon intensity = %v, want near ceiling %v", got, want)
	}
}

func TestMidnightElevationMin(t *testing.T) {
	s := Compute(0.0)
	if s.Sun.Direction.Y() > -0.9 {
		t.Errorf("midnight sun elevation = %v, want near min", s.Sun.Direction.Y())
	}
	if got := s.Sun.Intensity; math.Abs(float64(got)-sunIntensityFloor) > 1e-4 {
		t.Errorf("midnight intensity = %v, want floor %v", got, float32(sunIntensityFloor))
	}
}

func TestIntensityFloorNeverZero(t *testing.T) {
	for time01 := float32(0); time01 < 1.0; time01 += 0.01 {
		s := Compute(time01)
		if s.Sun.Intensity <= 0 {
			t.Errorf("Compute(%v) intensity = %v, want > 0", time01, s.Sun.Intensity)
		}
		if s.Amb.Intensity <= 0 {
			t.Errorf("Compute(%v) ambient intensity = %v, want > 0", time01, s.Amb.Intensity)
		}
	}
}

func TestDayFactorMonotonicMidnightToNoon(t *testing.T) {
	prev := Compute(0.0)
	for time01 := float32(0.01); time01 <= 0.5; time01 += 0.01 {
		cur := Compute(time01)
		if cur.DayFactor < prev.DayFactor {
			t.Fatalf("day factor decreased at t=%v: %v -> %v", time01, prev.DayFactor, cur.DayFactor)
		}
		if cur.Sun.Intensity < prev.Sun.Intensity {
			t.Fatalf("sun intensity decreased at t=%v: %v -> %v", time01, prev.Sun.Intensity, cur.Sun.Intensity)
		}
		prev = cur
	}
}

func TestColorsNonNegative(t *testing.T) {
	for time01 := float32(0); time01 < 1.0; time01 += 0.005 {
		s := Compute(time01)
		for i := 0; i < 3; i++ {
			if s.Sun.Color[i] < 0 {
				t.Fatalf("Compute(%v) sun color[%d] = %v, want >= 0", time01, i, s.Sun.Color[i])
			}
			if s.Amb.Color[i] < 0 {
				t.Fatalf("Compute(%v) ambient color[%d] = %v, want >= 0", time01, i, s.Amb.Color[i])
			}
		}
	}
}

func TestWarmHorizonNeutralNoon(t *testing.T) {
	noon := Compute(0.5)
	sunrise := Compute(0.25)

	// Warmth: red/blue ratio is much higher at the horizon than at noon.
	noonWarmth := noon.Sun.Color.X() / noon.Sun.Color.Z()
	sunriseWarmth := sunrise.Sun.Color.X() / sunrise.Sun.Color.Z()
	if sunriseWarmth <= noonWarmth {
		t.Errorf("sunrise warmth %v not greater than noon warmth %v", sunriseWarmth, noonWarmth)
	}
}

func TestDirectionNormalized(t *testing.T) {
	for time01 := float32(0); time01 < 1.0; time01 += 0.02 {
		d := Compute(time01).Sun.Direction
		if l := d.Len(); math.Abs(float64(l)-1.0) > 1e-4 {
			t.Errorf("Compute(%v) direction length = %v, want 1", time01, l)
		}
	}
}
