// Package scene renders the island: terrain, water, cube geometry, the boat
// and the campfire, all sharing one lighting and clip-plane contract.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/emberisle/emberisle/internal/engine/scene/shaders"
	"github.com/emberisle/emberisle/internal/engine/shader"
	"github.com/emberisle/emberisle/internal/engine/terrain"
	"github.com/emberisle/emberisle/internal/engine/texture"
)

// TerrainRenderer draws the island mesh with height-blended rocky and sand
// textures over the baked vertex colors.
type TerrainRenderer struct {
	program *shader.Program

	vao         uint32
	vbo         uint32
	vertexCount int32

	texRocky uint32
	texSand  uint32

	// UVScale controls texture repetition across the terrain.
	UVScale float32
	// SandHeight is the world height below which sand takes over.
	SandHeight float32
	// BlendWidth widens the sand-to-rock transition band.
	BlendWidth float32
	Tint       mgl32.Vec3
}

// NewTerrainRenderer compiles the terrain program and loads the diffuse
// textures. A texture that fails to load is replaced by a solid fallback so
// the terrain never renders black.
func NewTerrainRenderer(rockyPath, sandPath string, log *zap.Logger) (*TerrainRenderer, error) {
	program, err := shader.Compile(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	tr := &TerrainRenderer{
		program:    program,
		UVScale:    0.05,
		SandHeight: 0,
		BlendWidth: 0.35,
		Tint:       mgl32.Vec3{1, 1, 1},
	}

	tr.texRocky = loadOrFallback(rockyPath, 180, 180, 180, log)
	tr.texSand = loadOrFallback(sandPath, 200, 190, 140, log)

	return tr, nil
}

func loadOrFallback(path string, r, g, b uint8, log *zap.Logger) uint32 {
	img, err := texture.LoadFile(path)
	if err != nil {
		log.Warn("terrain texture failed, using solid fallback",
			zap.String("path", path),
			zap.Error(err))
		return texture.Solid(r, g, b, 255)
	}
	return texture.Upload(img)
}

// Upload pushes the terrain mesh to the GPU, replacing any previous mesh.
func (tr *TerrainRenderer) Upload(mesh *terrain.Mesh) {
	if tr.vao == 0 {
		gl.GenVertexArrays(1, &tr.vao)
		gl.GenBuffers(1, &tr.vbo)
	}

	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(terrain.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	tr.vertexCount = int32(mesh.VertexCount())
}

// Program exposes the terrain program for lighting and clip-plane updates.
func (tr *TerrainRenderer) Program() *shader.Program {
	return tr.program
}

// Draw renders the terrain with the given matrices. Lighting and the clip
// plane are expected to be set on the program beforehand.
func (tr *TerrainRenderer) Draw(view, proj mgl32.Mat4) {
	if tr.vao == 0 || tr.vertexCount == 0 {
		return
	}

	tr.program.Use()
	tr.program.SetMat4("uModel", mgl32.Ident4())
	tr.program.SetMat4("uView", view)
	tr.program.SetMat4("uProj", proj)
	tr.program.SetFloat("uUvScale", tr.UVScale)
	tr.program.SetFloat("uSandHeight", tr.SandHeight)
	tr.program.SetFloat("uBlendWidth", tr.BlendWidth)
	tr.program.SetVec3("uTint", tr.Tint)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texRocky)
	tr.program.SetInt("uRockyTex", 0)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, tr.texSand)
	tr.program.SetInt("uSandTex", 1)

	gl.BindVertexArray(tr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, tr.vertexCount)
	gl.BindVertexArray(0)

	gl.ActiveTexture(gl.TEXTURE0)
}

// Destroy releases GPU resources. Safe to call more than once.
func (tr *TerrainRenderer) Destroy() {
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.texRocky != 0 {
		gl.DeleteTextures(1, &tr.texRocky)
		tr.texRocky = 0
	}
	if tr.texSand != 0 {
		gl.DeleteTextures(1, &tr.texSand)
		tr.texSand = 0
	}
	if tr.program != nil {
		tr.program.Destroy()
		tr.program = nil
	}
}
