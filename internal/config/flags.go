package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMesh       = flag.String("mesh", "", "Path to an OFF mesh file")
	flagModel      = flag.String("model", "", "Initial model: cube, sphere or mesh")
	flagSpeed      = flag.Float64("speed", 0, "Initial play speed multiplier")
	flagSeed       = flag.Int64("seed", 0, "Random seed for resets (0 = clock)")
	flagWatch      = flag.Bool("watch", false, "Reload the mesh file when it changes")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config destination, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMesh != "" {
		cfg.Models.MeshPath = *flagMesh
	}
	if *flagModel != "" {
		cfg.Models.Initial = *flagModel
	}
	if *flagSpeed > 0 {
		cfg.Sim.PlaySpeed = float32(*flagSpeed)
	}
	if *flagSeed != 0 {
		cfg.Sim.Seed = *flagSeed
	}
	if *flagWatch {
		cfg.Models.Watch = true
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
}
