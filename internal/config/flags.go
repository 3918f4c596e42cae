package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPreset     = flag.String("preset", "", "Post-processing preset: none, fast, quality, maxquality")
	flagFlipUV     = flag.Bool("flipuv", false, "Flip texture coordinates along the y axis")
	flagNativeLog  = flag.Bool("nativelog", false, "Forward the import library's log to stderr")
	flagWindowed   = flag.Bool("windowed", false, "Run the viewer in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run the viewer in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Viewer window width")
	flagHeight     = flag.Int("height", 0, "Viewer window height")
	flagWireframe  = flag.Bool("wireframe", false, "Render models as wireframe")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Import.NativeLogVerbose = true
	}
	if *flagPreset != "" {
		cfg.Import.Preset = *flagPreset
	}
	if *flagFlipUV {
		cfg.Import.FlipUVs = true
	}
	if *flagNativeLog {
		cfg.Import.NativeLog = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagWireframe {
		cfg.Viewer.Wireframe = true
	}
}
