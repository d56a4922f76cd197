package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/lighting"
)

var (
	skyNight   = mgl32.Vec3{0.01, 0.02, 0.05}
	skyNoon    = mgl32.Vec3{0.40, 0.62, 0.88}
	skyHorizon = mgl32.Vec3{0.95, 0.55, 0.30}
)

// SkyColor derives the clear color for a pass from the lighting state:
// night blended toward noon blue by the day factor, warmed by the horizon
// band at sunrise and sunset.
func SkyColor(st lighting.State) mgl32.Vec3 {
	c := mix3(skyNight, skyNoon, st.DayFactor)
	return mix3(c, skyHorizon, st.HorizonFactor*0.55)
}

// ClearSky clears color and depth with the sky color for this frame.
func ClearSky(st lighting.State) {
	c := SkyColor(st)
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func mix3(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Mul(1 - f).Add(b.Mul(f))
}
