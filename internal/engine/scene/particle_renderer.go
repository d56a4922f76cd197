package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/particles"
	"github.com/emberisle/emberisle/internal/engine/scene/shaders"
	"github.com/emberisle/emberisle/internal/engine/shader"
	"github.com/emberisle/emberisle/internal/engine/water"
)

// instanceFloats is the per-instance layout: posSize vec4 + ageSeedKind vec4.
const instanceFloats = 8

// ParticleRenderer draws the campfire simulation as camera-facing billboards
// with additive blending and depth writes off.
type ParticleRenderer struct {
	program *shader.Program

	vao     uint32
	vboQuad uint32
	vboInst uint32

	maxInstances int
	scratch      []float32

	// Intensity scales overall brightness.
	Intensity float32
}

var billboardQuad = []float32{
	-0.5, -0.5, 0, 0,
	0.5, -0.5, 1, 0,
	0.5, 0.5, 1, 1,
	-0.5, -0.5, 0, 0,
	0.5, 0.5, 1, 1,
	-0.5, 0.5, 0, 1,
}

// NewParticleRenderer compiles the particle program and allocates the
// instance buffer for at most maxInstances billboards.
func NewParticleRenderer(maxInstances int) (*ParticleRenderer, error) {
	program, err := shader.Compile(shaders.ParticleVertexShader, shaders.ParticleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("particle shader: %w", err)
	}

	pr := &ParticleRenderer{
		program:      program,
		maxInstances: maxInstances,
		scratch:      make([]float32, 0, maxInstances*instanceFloats),
		Intensity:    1.15,
	}

	gl.GenVertexArrays(1, &pr.vao)
	gl.BindVertexArray(pr.vao)

	gl.GenBuffers(1, &pr.vboQuad)
	gl.BindBuffer(gl.ARRAY_BUFFER, pr.vboQuad)
	gl.BufferData(gl.ARRAY_BUFFER, len(billboardQuad)*4, unsafe.Pointer(&billboardQuad[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.GenBuffers(1, &pr.vboInst)
	gl.BindBuffer(gl.ARRAY_BUFFER, pr.vboInst)
	gl.BufferData(gl.ARRAY_BUFFER, maxInstances*instanceFloats*4, nil, gl.STREAM_DRAW)

	stride := int32(instanceFloats * 4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 0)
	gl.VertexAttribDivisor(2, 1)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, stride, 4*4)
	gl.VertexAttribDivisor(3, 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return pr, nil
}

// Draw uploads the live instances and renders them facing the camera.
func (pr *ParticleRenderer) Draw(inst []particles.Instance, view, proj mgl32.Mat4, camRight, camUp mgl32.Vec3, clip water.ClipPlane, timeSec float32) {
	if pr.vao == 0 || len(inst) == 0 {
		return
	}
	if len(inst) > pr.maxInstances {
		inst = inst[:pr.maxInstances]
	}

	pr.scratch = pr.scratch[:0]
	for _, g := range inst {
		pr.scratch = append(pr.scratch,
			g.Pos.X(), g.Pos.Y(), g.Pos.Z(), g.Size,
			g.Age01, g.Seed, float32(g.Kind), 0)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, pr.vboInst)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(pr.scratch)*4, unsafe.Pointer(&pr.scratch[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	pr.program.Use()
	pr.program.SetMat4("uView", view)
	pr.program.SetMat4("uProj", proj)
	pr.program.SetVec3("uCamRight", camRight)
	pr.program.SetVec3("uCamUp", camUp)
	pr.program.SetVec4("uClipPlane", clip.Vec4())
	pr.program.SetFloat("uTime", timeSec)
	pr.program.SetFloat("uIntensity", pr.Intensity)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	cullWas := gl.IsEnabled(gl.CULL_FACE)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(pr.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, int32(len(inst)))
	gl.BindVertexArray(0)

	if cullWas {
		gl.Enable(gl.CULL_FACE)
	}

	gl.DepthMask(true)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.BLEND)
}

// Destroy releases GPU resources. Safe to call more than once.
func (pr *ParticleRenderer) Destroy() {
	if pr.vboInst != 0 {
		gl.DeleteBuffers(1, &pr.vboInst)
		pr.vboInst = 0
	}
	if pr.vboQuad != 0 {
		gl.DeleteBuffers(1, &pr.vboQuad)
		pr.vboQuad = 0
	}
	if pr.vao != 0 {
		gl.DeleteVertexArrays(1, &pr.vao)
		pr.vao = 0
	}
	if pr.program != nil {
		pr.program.Destroy()
		pr.program = nil
	}
}
