package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/scene/shaders"
	"github.com/emberisle/emberisle/internal/engine/shader"
)

// Unit cube centered at the origin, position + normal per vertex.
var cubeVertices = []float32{
	// front (+Z)
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	// back (-Z)
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	// left (-X)
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	// right (+X)
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	// top (+Y)
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	// bottom (-Y)
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
}

// CubeRenderer draws tinted unit cubes: the box-part character, campfire
// logs and the emissive sun marker all reuse the same mesh.
type CubeRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32
}

// NewCubeRenderer compiles the basic program and uploads the cube mesh.
func NewCubeRenderer() (*CubeRenderer, error) {
	program, err := shader.Compile(shaders.BasicVertexShader, shaders.BasicFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("basic shader: %w", err)
	}

	cr := &CubeRenderer{program: program}

	gl.GenVertexArrays(1, &cr.vao)
	gl.GenBuffers(1, &cr.vbo)

	gl.BindVertexArray(cr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, cr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, unsafe.Pointer(&cubeVertices[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return cr, nil
}

// Program exposes the basic program for lighting and clip-plane updates.
func (cr *CubeRenderer) Program() *shader.Program {
	return cr.program
}

// Begin binds the program and sets the per-pass matrices once. Draw calls
// between Begin and the end of the pass reuse them.
func (cr *CubeRenderer) Begin(view, proj mgl32.Mat4) {
	cr.program.Use()
	cr.program.SetMat4("uView", view)
	cr.program.SetMat4("uProj", proj)
}

// Draw renders one lit cube with the given transform and tint.
func (cr *CubeRenderer) Draw(model mgl32.Mat4, tint mgl32.Vec3) {
	cr.drawCube(model, tint, false)
}

// DrawEmissive renders one unlit cube at full tint brightness.
func (cr *CubeRenderer) DrawEmissive(model mgl32.Mat4, tint mgl32.Vec3) {
	cr.drawCube(model, tint, true)
}

func (cr *CubeRenderer) drawCube(model mgl32.Mat4, tint mgl32.Vec3, emissive bool) {
	cr.program.Use()
	cr.program.SetMat4("uModel", model)
	cr.program.SetVec3("uTint", tint)
	if emissive {
		cr.program.SetInt("uEmissive", 1)
	} else {
		cr.program.SetInt("uEmissive", 0)
	}

	gl.BindVertexArray(cr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources. Safe to call more than once.
func (cr *CubeRenderer) Destroy() {
	if cr.vbo != 0 {
		gl.DeleteBuffers(1, &cr.vbo)
		cr.vbo = 0
	}
	if cr.vao != 0 {
		gl.DeleteVertexArrays(1, &cr.vao)
		cr.vao = 0
	}
	if cr.program != nil {
		cr.program.Destroy()
		cr.program = nil
	}
}
