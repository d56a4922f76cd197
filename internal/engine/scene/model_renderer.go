package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/emberisle/emberisle/internal/engine/scene/shaders"
	"github.com/emberisle/emberisle/internal/engine/shader"
)

// ModelRenderer draws the rowboat hull. Face culling is disabled around the
// draw because the hull interior is visible from above.
type ModelRenderer struct {
	program *shader.Program

	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewModelRenderer compiles the model program and uploads the hull mesh.
func NewModelRenderer() (*ModelRenderer, error) {
	program, err := shader.Compile(shaders.ModelVertexShader, shaders.ModelFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("model shader: %w", err)
	}

	mr := &ModelRenderer{program: program}

	verts := BuildBoatHull()

	gl.GenVertexArrays(1, &mr.vao)
	gl.GenBuffers(1, &mr.vbo)

	gl.BindVertexArray(mr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, mr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(boatStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	mr.vertexCount = int32(len(verts) / boatStride)

	return mr, nil
}

// Program exposes the model program for lighting and clip-plane updates.
func (mr *ModelRenderer) Program() *shader.Program {
	return mr.program
}

// Draw renders the hull with the given model transform.
func (mr *ModelRenderer) Draw(model, view, proj mgl32.Mat4) {
	if mr.vao == 0 {
		return
	}

	mr.program.Use()
	mr.program.SetMat4("uModel", model)
	mr.program.SetMat4("uView", view)
	mr.program.SetMat4("uProj", proj)

	cullWas := gl.IsEnabled(gl.CULL_FACE)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(mr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, mr.vertexCount)
	gl.BindVertexArray(0)

	if cullWas {
		gl.Enable(gl.CULL_FACE)
	}
}

// Destroy releases GPU resources. Safe to call more than once.
func (mr *ModelRenderer) Destroy() {
	if mr.vbo != 0 {
		gl.DeleteBuffers(1, &mr.vbo)
		mr.vbo = 0
	}
	if mr.vao != 0 {
		gl.DeleteVertexArrays(1, &mr.vao)
		mr.vao = 0
	}
	if mr.program != nil {
		mr.program.Destroy()
		mr.program = nil
	}
}
