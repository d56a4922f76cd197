// Package game implements the main loop: simulation update, the reflection
// pass, the main pass and the water composite, in that order every frame.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/emberisle/emberisle/internal/config"
	"github.com/emberisle/emberisle/internal/engine/camera"
	"github.com/emberisle/emberisle/internal/engine/environment"
	"github.com/emberisle/emberisle/internal/engine/input"
	"github.com/emberisle/emberisle/internal/engine/lighting"
	"github.com/emberisle/emberisle/internal/engine/particles"
	"github.com/emberisle/emberisle/internal/engine/scene"
	"github.com/emberisle/emberisle/internal/engine/shader"
	"github.com/emberisle/emberisle/internal/engine/terrain"
	"github.com/emberisle/emberisle/internal/engine/water"
	"github.com/emberisle/emberisle/internal/engine/window"
	"github.com/emberisle/emberisle/internal/logger"
)

const (
	fovYDeg   = 60.0
	nearPlane = 0.1
	farPlane  = 200.0

	maxFireParticles = 2500

	// Campfire offset from the player, clamped to stay on the island.
	fireOffsetX = 1.20
	fireOffsetZ = 0.80
	fireMargin  = 0.6

	// Boat placement on the water.
	boatX       = -13.0
	boatZ       = -5.0
	boatYawDeg  = 90.0
	boatScale   = 3.0
	boatYOffset = 0.05

	sunMarkerDistance = 120.0
	sunMarkerScale    = 1.5
)

// Game is the main instance wiring simulation and rendering together.
type Game struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input

	terrain *terrain.Terrain
	env     *environment.Environment
	player  *Player
	camera  *camera.Orbit
	fire    *particles.Sim

	terrainR  *scene.TerrainRenderer
	waterR    *scene.WaterRenderer
	cubeR     *scene.CubeRenderer
	modelR    *scene.ModelRenderer
	particleR *scene.ParticleRenderer

	fbWidth  int
	fbHeight int

	fps fpsCounter
}

// New creates the window, the OpenGL context and every scene resource.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Emberisle",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	g.fbWidth, g.fbHeight = clampDrawable(g.window.GetDrawableSize())

	// Terrain.
	tc := cfg.Terrain
	g.terrain, err = terrain.New(tc.WidthVerts, tc.DepthVerts, tc.GridSpacing)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating terrain: %w", err)
	}
	g.terrain.WaterHeight = cfg.Water.Height
	g.terrain.Build(tc.NoiseScale, tc.HeightScale, tc.Seed)
	logger.Info("terrain built",
		zap.Int("width_verts", tc.WidthVerts),
		zap.Int("depth_verts", tc.DepthVerts),
		zap.Int("seed", tc.Seed),
		zap.Int("triangles", g.terrain.Mesh().TriangleCount()))

	// Renderers.
	g.terrainR, err = scene.NewTerrainRenderer(cfg.Assets.RockyTexture, cfg.Assets.SandTexture, logger.Log)
	if err != nil {
		g.destroyRenderers()
		g.window.Close()
		return nil, fmt.Errorf("terrain renderer: %w", err)
	}
	g.terrainR.SandHeight = cfg.Water.Height
	g.terrainR.Upload(g.terrain.Mesh())

	g.waterR, err = scene.NewWaterRenderer(cfg.Water.Height,
		g.terrain.MinX(), g.terrain.MaxX(), g.terrain.MinZ(), g.terrain.MaxZ(),
		g.fbWidth, g.fbHeight, logger.Log)
	if err != nil {
		g.destroyRenderers()
		g.window.Close()
		return nil, fmt.Errorf("water renderer: %w", err)
	}
	g.waterR.ReflectStrength = cfg.Water.ReflectStrength
	g.waterR.DistortStrength = cfg.Water.DistortStrength

	g.cubeR, err = scene.NewCubeRenderer()
	if err != nil {
		g.destroyRenderers()
		g.window.Close()
		return nil, fmt.Errorf("cube renderer: %w", err)
	}

	g.modelR, err = scene.NewModelRenderer()
	if err != nil {
		g.destroyRenderers()
		g.window.Close()
		return nil, fmt.Errorf("model renderer: %w", err)
	}

	g.particleR, err = scene.NewParticleRenderer(maxFireParticles)
	if err != nil {
		g.destroyRenderers()
		g.window.Close()
		return nil, fmt.Errorf("particle renderer: %w", err)
	}

	// Simulation state.
	g.env = environment.New(cfg.Environment.DayLengthSeconds)
	g.env.Time().SetNormalized(cfg.Environment.StartTime)
	g.player = NewPlayer()
	g.camera = camera.NewOrbit()
	g.fire = particles.NewSim(maxFireParticles, time.Now().UnixNano())
	g.input = input.New()

	logger.Info("game initialized")
	return g, nil
}

// Run drives the main loop until quit.
func (g *Game) Run() error {
	g.running = true
	lastTime := time.Now()
	startTime := lastTime

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		elapsed := float32(now.Sub(startTime).Seconds())

		if g.input.Update() {
			break
		}
		g.handleEvents()

		g.update(dt, elapsed)
		g.render(elapsed)

		g.window.SwapBuffers()

		if g.cfg.Game.ShowFPS {
			if fps, ok := g.fps.Tick(now); ok {
				g.window.SetTitle(fmt.Sprintf("Emberisle (%.0f FPS)", fps))
			}
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventQuit:
			g.running = false
		case input.EventKeyDown:
			if ev.Key == sdl.SCANCODE_ESCAPE {
				g.running = false
			}
		case input.EventWindowResize:
			// Minimizing can report a zero drawable; a zero height
			// would poison the projection with Inf/NaN.
			g.fbWidth, g.fbHeight = clampDrawable(g.window.GetDrawableSize())
			g.waterR.Resize(g.fbWidth, g.fbHeight)
			logger.Debug("framebuffer resized",
				zap.Int("width", g.fbWidth),
				zap.Int("height", g.fbHeight))
		}
	}
}

func (g *Game) update(dt, elapsed float32) {
	// Camera consumes the right-button drag and wheel first, then the
	// player moves relative to it, then the camera re-centers.
	dx, dy := g.input.MouseDragDelta(sdl.BUTTON_RIGHT)
	g.camera.HandleDrag(float32(dx), float32(dy))
	g.camera.HandleZoom(float32(g.input.WheelDelta()))

	move := MoveInput{}
	if g.input.IsKeyHeld(sdl.SCANCODE_W) {
		move.Forward += 1
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_S) {
		move.Forward -= 1
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_D) {
		move.Right += 1
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_A) {
		move.Right -= 1
	}

	g.player.Update(move, dt, g.terrain, g.camera)
	g.camera.Follow(g.player.Position)

	g.env.Update(dt)

	// Campfire sits beside the player, grounded on the terrain.
	fx := clampf(g.player.Position.X()+fireOffsetX, g.terrain.MinX()+fireMargin, g.terrain.MaxX()-fireMargin)
	fz := clampf(g.player.Position.Z()+fireOffsetZ, g.terrain.MinZ()+fireMargin, g.terrain.MaxZ()-fireMargin)
	fy := g.terrain.GetHeight(fx, fz) + footLift
	g.fire.SetEmitterPosition(mgl32.Vec3{fx, fy, fz})
	g.fire.Update(dt, elapsed)
}

func (g *Game) render(elapsed float32) {
	st := g.env.Lighting()
	waterY := g.waterR.WaterY()

	aspect := float32(g.fbWidth) / float32(g.fbHeight)
	proj := mgl32.Perspective(mgl32.DegToRad(fovYDeg), aspect, nearPlane, farPlane)
	view := g.camera.ViewMatrix()

	camRef := g.camera.Mirrored(waterY)
	viewRef := camRef.ViewMatrix()

	clipAbove := water.ClipAbove(waterY)
	clipOff := water.ClipPassThrough()

	// Pass A: mirrored scene into the reflection target.
	g.setClipPlane(clipAbove)
	if g.waterR.BeginReflectionPass() {
		scene.ClearSky(st)
		g.applyLighting(st, camRef.Position)
		g.drawScene(viewRef, proj)
		g.particleR.Draw(g.fire.Instances(), viewRef, proj,
			camRef.Right(), camRef.Up(), clipAbove, elapsed)
		g.waterR.EndReflectionPass(g.fbWidth, g.fbHeight)
	}

	// Pass B: normal scene.
	g.setClipPlane(clipOff)
	scene.ClearSky(st)
	g.applyLighting(st, g.camera.Position)
	g.drawScene(view, proj)

	// Pass C: water composite, then the overlays that must not be mirrored.
	g.waterR.RenderSurface(view, proj, viewRef, st, g.camera.Position, elapsed)

	g.particleR.Draw(g.fire.Instances(), view, proj,
		g.camera.Right(), g.camera.Up(), clipOff, elapsed)

	g.drawSunMarker(st, view, proj)
}

func (g *Game) setClipPlane(clip water.ClipPlane) {
	for _, p := range []*shader.Program{
		g.terrainR.Program(), g.cubeR.Program(), g.modelR.Program(),
	} {
		p.Use()
		p.SetVec4("uClipPlane", clip.Vec4())
	}
}

func (g *Game) applyLighting(st lighting.State, cameraPos mgl32.Vec3) {
	lighting.Apply(g.terrainR.Program(), st, cameraPos)
	lighting.Apply(g.cubeR.Program(), st, cameraPos)
	lighting.Apply(g.modelR.Program(), st, cameraPos)
}

// drawScene renders terrain, player and boat. Used by both the reflection
// pass and the main pass.
func (g *Game) drawScene(view, proj mgl32.Mat4) {
	g.terrainR.Draw(view, proj)

	g.cubeR.Begin(view, proj)
	for _, part := range g.player.Parts() {
		g.cubeR.Draw(part.Model, part.Tint)
	}

	// Boat floats at the water line.
	boatModel := mgl32.Translate3D(boatX, g.waterR.WaterY()+boatYOffset, boatZ).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(boatYawDeg))).
		Mul4(mgl32.Scale3D(boatScale, boatScale, boatScale))
	g.modelR.Draw(boatModel, view, proj)
}

// drawSunMarker draws an emissive cube along the sun direction while the sun
// is above the horizon.
func (g *Game) drawSunMarker(st lighting.State, view, proj mgl32.Mat4) {
	dir := st.Sun.Direction
	if dir.Y() <= 0 {
		return
	}

	pos := dir.Normalize().Mul(sunMarkerDistance)
	model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(sunMarkerScale, sunMarkerScale, sunMarkerScale))

	g.cubeR.Begin(view, proj)
	g.cubeR.DrawEmissive(model, mgl32.Vec3{1.0, 0.9, 0.6})
}

// clampDrawable keeps both framebuffer dimensions at least 1 pixel.
func clampDrawable(w, h int) (int, int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (g *Game) destroyRenderers() {
	if g.particleR != nil {
		g.particleR.Destroy()
	}
	if g.modelR != nil {
		g.modelR.Destroy()
	}
	if g.cubeR != nil {
		g.cubeR.Destroy()
	}
	if g.waterR != nil {
		g.waterR.Destroy()
	}
	if g.terrainR != nil {
		g.terrainR.Destroy()
	}
}

// Close releases every GPU resource and the window.
func (g *Game) Close() {
	logger.Info("shutting down")
	g.destroyRenderers()
	if g.window != nil {
		g.window.Close()
	}
}
