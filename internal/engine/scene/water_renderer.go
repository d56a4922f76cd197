package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/emberisle/emberisle/internal/engine/framebuffer"
	"github.com/emberisle/emberisle/internal/engine/lighting"
	"github.com/emberisle/emberisle/internal/engine/scene/shaders"
	"github.com/emberisle/emberisle/internal/engine/shader"
	"github.com/emberisle/emberisle/internal/engine/texture"
	"github.com/emberisle/emberisle/internal/engine/water"
)

// WaterRenderer owns the reflection framebuffer and the water surface pass.
//
// Frame protocol: BeginReflectionPass, draw the mirrored scene,
// EndReflectionPass, draw the normal scene, then RenderSurface composites
// the captured reflection onto the water plane.
type WaterRenderer struct {
	program *shader.Program

	vao         uint32
	vbo         uint32
	vertexCount int32

	// reflection is nil when the target could not be completed; the
	// surface then samples fallbackTex instead of a mirrored scene.
	reflection  *framebuffer.Target
	fallbackTex uint32

	waterY float32

	// WaterColor tints the refracted base under the reflection.
	WaterColor      mgl32.Vec3
	ReflectStrength float32
	DistortStrength float32

	inReflection bool
}

// NewWaterRenderer builds the tessellated plane over the terrain footprint
// and allocates a half-resolution reflection target. If the target cannot
// be completed the renderer still works, compositing a flat sky tint
// instead of a mirrored scene.
func NewWaterRenderer(waterY, minX, maxX, minZ, maxZ float32, fbWidth, fbHeight int, log *zap.Logger) (*WaterRenderer, error) {
	program, err := shader.Compile(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	rw, rh := water.ReflectionSize(fbWidth, fbHeight)
	reflection, err := framebuffer.New(rw, rh)
	if err != nil {
		log.Warn("reflection target unavailable, water will not mirror the scene", zap.Error(err))
		reflection = nil
	}

	wr := &WaterRenderer{
		program:         program,
		reflection:      reflection,
		fallbackTex:     texture.Solid(110, 140, 160, 255),
		waterY:          waterY,
		WaterColor:      mgl32.Vec3{0.02, 0.15, 0.22},
		ReflectStrength: 1.0,
		DistortStrength: 0.02,
	}

	plane := water.BuildPlane(minX, maxX, minZ, maxZ, water.DefaultSegments, water.DefaultSegments)
	wr.upload(plane)

	return wr, nil
}

func (wr *WaterRenderer) upload(plane *water.Plane) {
	gl.GenVertexArrays(1, &wr.vao)
	gl.GenBuffers(1, &wr.vbo)

	gl.BindVertexArray(wr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(plane.Vertices)*4, unsafe.Pointer(&plane.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(water.PlaneStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	wr.vertexCount = int32(plane.VertexCount())
}

// WaterY reports the world height of the surface.
func (wr *WaterRenderer) WaterY() float32 { return wr.waterY }

// Resize recreates the reflection target for a new framebuffer size.
func (wr *WaterRenderer) Resize(fbWidth, fbHeight int) {
	if wr.reflection == nil {
		return
	}
	rw, rh := water.ReflectionSize(fbWidth, fbHeight)
	wr.reflection.Resize(rw, rh)
}

// BeginReflectionPass redirects rendering into the reflection target and
// enables the clip plane, returning true when the caller should draw the
// mirrored scene. Returns false when no reflection target exists.
func (wr *WaterRenderer) BeginReflectionPass() bool {
	if wr.inReflection || wr.reflection == nil {
		return false
	}
	wr.inReflection = true

	gl.Enable(gl.CLIP_DISTANCE0)
	wr.reflection.Bind()
	wr.reflection.Clear(0, 0, 0, 1)
	return true
}

// EndReflectionPass restores the default framebuffer and main viewport.
func (wr *WaterRenderer) EndReflectionPass(fbWidth, fbHeight int) {
	if !wr.inReflection {
		return
	}
	wr.inReflection = false

	wr.reflection.Unbind(fbWidth, fbHeight)
	gl.Disable(gl.CLIP_DISTANCE0)
}

// RenderSurface composites the reflection onto the water plane. viewRef is
// the mirrored camera's view matrix used during the reflection pass.
func (wr *WaterRenderer) RenderSurface(view, proj, viewRef mgl32.Mat4, st lighting.State, cameraPos mgl32.Vec3, timeSec float32) {
	if wr.vao == 0 || wr.vertexCount == 0 {
		return
	}

	wr.program.Use()
	wr.program.SetMat4("uModel", mgl32.Ident4())
	wr.program.SetMat4("uView", view)
	wr.program.SetMat4("uProj", proj)
	wr.program.SetMat4("uViewRef", viewRef)
	wr.program.SetFloat("uTime", timeSec)
	wr.program.SetFloat("uWaterY", wr.waterY)
	wr.program.SetVec3("uWaterColor", wr.WaterColor)
	wr.program.SetFloat("uReflectStrength", wr.ReflectStrength)
	wr.program.SetFloat("uDistortStrength", wr.DistortStrength)

	lighting.Apply(wr.program, st, cameraPos)

	gl.ActiveTexture(gl.TEXTURE0)
	if wr.reflection != nil {
		gl.BindTexture(gl.TEXTURE_2D, wr.reflection.ColorTexture())
	} else {
		gl.BindTexture(gl.TEXTURE_2D, wr.fallbackTex)
	}
	wr.program.SetInt("uReflectTex", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(wr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, wr.vertexCount)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Destroy releases GPU resources. Safe to call more than once.
func (wr *WaterRenderer) Destroy() {
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.reflection != nil {
		wr.reflection.Destroy()
		wr.reflection = nil
	}
	if wr.fallbackTex != 0 {
		gl.DeleteTextures(1, &wr.fallbackTex)
		wr.fallbackTex = 0
	}
	if wr.program != nil {
		wr.program.Destroy()
		wr.program = nil
	}
}
