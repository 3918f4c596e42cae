// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Import   ImportConfig   `yaml:"import"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings for the viewer window.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ImportConfig holds settings applied to every asset import.
type ImportConfig struct {
	// Preset selects the post-processing preset: "fast", "quality",
	// "maxquality" or "none" (triangulation only).
	Preset string `yaml:"preset"`
	// SmoothingAngle is the maximum angle in degrees for normal
	// smoothing; 0 keeps the native default.
	SmoothingAngle float32 `yaml:"smoothing_angle"`
	FlipUVs        bool    `yaml:"flip_uvs"`
	// RemoveDegenerates drops degenerate triangles instead of
	// converting them to lines and points.
	RemoveDegenerates bool `yaml:"remove_degenerates"`
	// Validate runs the structure validation step on every import.
	Validate bool `yaml:"validate"`
	// NativeLog forwards the import library's own log to stderr.
	NativeLog        bool `yaml:"native_log"`
	NativeLogVerbose bool `yaml:"native_log_verbose"`
}

// ViewerConfig holds rendering settings for the model viewer.
type ViewerConfig struct {
	FOV        float32    `yaml:"fov"`        // vertical field of view, degrees
	Wireframe  bool       `yaml:"wireframe"`
	Background [3]float32 `yaml:"background"` // clear color, rgb in [0,1]
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
		Import: ImportConfig{
			Preset:            "quality",
			SmoothingAngle:    0,
			FlipUVs:           false,
			RemoveDegenerates: true,
			NativeLog:         false,
			NativeLogVerbose:  false,
		},
		Viewer: ViewerConfig{
			FOV:        45,
			Wireframe:  false,
			Background: [3]float32{0.12, 0.12, 0.14},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
