// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Terrain     TerrainConfig     `yaml:"terrain"`
	Water       WaterConfig       `yaml:"water"`
	Environment EnvironmentConfig `yaml:"environment"`
	Assets      AssetsConfig      `yaml:"assets"`
	Game        GameConfig        `yaml:"game"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds island generation settings.
type TerrainConfig struct {
	WidthVerts  int     `yaml:"width_verts"`
	DepthVerts  int     `yaml:"depth_verts"`
	GridSpacing float32 `yaml:"grid_spacing"`
	NoiseScale  float32 `yaml:"noise_scale"`
	HeightScale float32 `yaml:"height_scale"`
	Seed        int     `yaml:"seed"`
}

// WaterConfig holds water surface settings.
type WaterConfig struct {
	Height          float32 `yaml:"height"`
	ReflectStrength float32 `yaml:"reflect_strength"`
	DistortStrength float32 `yaml:"distort_strength"`
}

// EnvironmentConfig holds the day/night cycle settings.
type EnvironmentConfig struct {
	DayLengthSeconds float32 `yaml:"day_length_seconds"`
	StartTime        float32 `yaml:"start_time"` // normalized, 0.25 = morning
}

// AssetsConfig holds texture file paths.
type AssetsConfig struct {
	RockyTexture string `yaml:"rocky_texture"`
	SandTexture  string `yaml:"sand_texture"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowFPS bool `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			WidthVerts:  320,
			DepthVerts:  320,
			GridSpacing: 0.5,
			NoiseScale:  0.08,
			HeightScale: 10.0,
			Seed:        1337,
		},
		Water: WaterConfig{
			Height:          -0.5,
			ReflectStrength: 1.0,
			DistortStrength: 0.02,
		},
		Environment: EnvironmentConfig{
			DayLengthSeconds: 30,
			StartTime:        0.25,
		},
		Assets: AssetsConfig{
			RockyTexture: "assets/textures/rocky_diff.jpg",
			SandTexture:  "assets/textures/sand_diff.jpg",
		},
		Game: GameConfig{
			ShowFPS: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
