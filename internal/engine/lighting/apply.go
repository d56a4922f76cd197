package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/shader"
)

// Apply broadcasts the lighting state to a shader program. Every lit program
// uses the same uniform names, so the orchestrator can send identical values
// to terrain, character, model, water and particle shaders each frame.
func Apply(p *shader.Program, st State, cameraPos mgl32.Vec3) {
	p.Use()
	p.SetVec3("uSunDir", st.Sun.Direction.Normalize())
	p.SetVec3("uSunColor", st.Sun.Color)
	p.SetFloat("uSunIntensity", st.Sun.Intensity)
	p.SetVec3("uAmbientColor", st.Amb.Color)
	p.SetFloat("uAmbientIntensity", st.Amb.Intensity)
	p.SetVec3("uCameraPos", cameraPos)
	p.SetFloat("uTimeOfDay01", st.Time01)
}
