package game

import "time"

// fpsCounter averages the frame rate over one-second windows.
type fpsCounter struct {
	frames      int
	windowStart time.Time
}

// Tick records one frame. Once per second it reports the average rate for
// the window just ended and resets; between reports updated is false.
func (c *fpsCounter) Tick(now time.Time) (fps float64, updated bool) {
	if c.windowStart.IsZero() {
		c.windowStart = now
	}
	c.frames++

	elapsed := now.Sub(c.windowStart)
	if elapsed < time.Second {
		return 0, false
	}

	fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.windowStart = now
	return fps, true
}
