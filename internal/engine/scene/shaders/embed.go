// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// BasicVertexShader is the vertex shader for colored cube geometry
// (player character, campfire logs, sun marker).
//
//go:embed basic.vert
var BasicVertexShader string

// BasicFragmentShader is the fragment shader for colored cube geometry.
//
//go:embed basic.frag
var BasicFragmentShader string

// ModelVertexShader is the vertex shader for model rendering.
//
//go:embed model.vert
var ModelVertexShader string

// ModelFragmentShader is the fragment shader for model rendering.
//
//go:embed model.frag
var ModelFragmentShader string

// WaterVertexShader is the vertex shader for the water surface.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the water surface.
//
//go:embed water.frag
var WaterFragmentShader string

// ParticleVertexShader is the vertex shader for instanced billboards.
//
//go:embed particle.vert
var ParticleVertexShader string

// ParticleFragmentShader is the fragment shader for campfire particles.
//
//go:embed particle.frag
var ParticleFragmentShader string
