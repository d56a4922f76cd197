package scene

import (
	"testing"

	"github.com/emberisle/emberisle/internal/engine/lighting"
)

func TestSkyColorNoonBrighterThanMidnight(t *testing.T) {
	noon := SkyColor(lighting.Compute(0.5))
	midnight := SkyColor(lighting.Compute(0.0))

	sum := func(v [3]float32) float32 { return v[0] + v[1] + v[2] }
	if sum(noon) <= sum(midnight) {
		t.Errorf("noon sky %v not brighter than midnight %v", noon, midnight)
	}
}

func TestSkyColorWarmAtSunrise(t *testing.T) {
	sunrise := SkyColor(lighting.Compute(0.25))
	noon := SkyColor(lighting.Compute(0.5))

	// Warm horizon band shifts red up relative to blue.
	warmth := func(v [3]float32) float32 { return v[0] - v[2] }
	if warmth(sunrise) <= warmth(noon) {
		t.Errorf("sunrise sky %v not warmer than noon %v", sunrise, noon)
	}
}

func TestSkyColorInRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		c := SkyColor(lighting.Compute(float32(i) / 100))
		for j := 0; j < 3; j++ {
			if c[j] < 0 || c[j] > 1 {
				t.Fatalf("time %d/100: component %d = %v outside [0,1]", i, j, c[j])
			}
		}
	}
}
