package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagSeed         = flag.Uint64("seed", 0, "Mane seed (0 keeps the configured value)")
	flagExport       = flag.String("export", "", "Write the posed scene to this .glb file and exit")
	flagExportFrames = flag.Int("export-frames", 120, "Frames to simulate before -export")
	flagExportCool   = flag.Bool("export-cool", false, "Hold the lion engaged while simulating for -export")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// ExportOptions is the -export request, if any.
type ExportOptions struct {
	Path   string
	Frames int
	Cool   bool
}

// Export returns the -export flags. Path is empty when no export was asked
// for.
func Export() ExportOptions {
	return ExportOptions{Path: *flagExport, Frames: *flagExportFrames, Cool: *flagExportCool}
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
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
	if *flagSeed != 0 {
		cfg.Animation.Seed = *flagSeed
	}
}
