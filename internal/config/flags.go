package config

import "flag"

// Flags is the flag set shared by the avatar tool's sub-commands.
var Flags = flag.NewFlagSet("avatartool", flag.ContinueOnError)

var (
	flagConfig     = Flags.String("config", "", "Path to config file")
	flagDebug      = Flags.Bool("debug", false, "Enable debug logging and ownership assertions")
	flagLogFile    = Flags.String("log-file", "", "Write logs to this file (rotated)")
	flagAppearance = Flags.String("appearance", "", "Path to appearance YAML")
	flagOut        = Flags.String("out", "", "Output directory for exported textures")
	flagPaintSize  = Flags.Int("paint-size", 0, "Garment texture paint size in pixels")
	flagOverlay    = Flags.Bool("head-overlay", false, "Enable the head debug overlay")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags(args []string) error {
	return Flags.Parse(args)
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return Flags.Args()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.Assertions = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagAppearance != "" {
		cfg.Avatar.AppearanceFile = *flagAppearance
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagPaintSize > 0 {
		cfg.Textures.PaintSize = *flagPaintSize
	}
	if *flagOverlay {
		cfg.Debug.HeadOverlay = true
	}
}
