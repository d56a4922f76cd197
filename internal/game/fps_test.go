package game

import (
	"math"
	"testing"
	"time"
)

func TestFPSCounterReportsOncePerSecond(t *testing.T) {
	var c fpsCounter
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// 60 frames at ~16.7ms each stay inside the first window.
	now := start
	for i := 0; i < 60; i++ {
		if _, ok := c.Tick(now); ok {
			t.Fatalf("unexpected report at frame %d", i)
		}
		now = now.Add(16666 * time.Microsecond)
	}

	// The frame crossing the one-second mark reports the window average.
	fps, ok := c.Tick(start.Add(time.Second))
	if !ok {
		t.Fatal("expected a report after one second")
	}
	if math.Abs(fps-61.0) > 0.5 {
		t.Errorf("fps = %v, want about 61", fps)
	}
}

func TestFPSCounterResetsAfterReport(t *testing.T) {
	var c fpsCounter
	start := time.Unix(0, 0)

	for i := 0; i <= 10; i++ {
		c.Tick(start.Add(time.Duration(i) * 100 * time.Millisecond))
	}

	// Second window at half the frame rate must not be inflated by the first.
	now := start.Add(time.Second)
	var fps float64
	var ok bool
	for i := 1; i <= 5; i++ {
		now = now.Add(200 * time.Millisecond)
		fps, ok = c.Tick(now)
	}
	if !ok {
		t.Fatal("expected a report at the end of the second window")
	}
	if math.Abs(fps-5.0) > 0.5 {
		t.Errorf("second window fps = %v, want about 5", fps)
	}
}
