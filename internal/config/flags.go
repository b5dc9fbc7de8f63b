package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
	flagPivot      = flag.String("pivot", "", "Default pivot as x,y in unit space (Y up)")
	flagForcePivot = flag.Bool("force-pivot", false, "Ignore pivotX/pivotY in the descriptor")
	flagDropEmpty  = flag.Bool("drop-empty", false, "Skip frames with zero width or height")
	flagFPS        = flag.Float64("fps", 0, "Animation frame rate")
	flagHeight     = flag.Float64("height", 0, "Atlas image height in pixels")
	flagFormat     = flag.String("format", "", "Output format: table, yaml or json")
	flagAux        = flag.Bool("aux", false, "Include rect and pivot curves")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagPivot != "" {
		p, err := ParsePivot(*flagPivot)
		if err != nil {
			return err
		}
		cfg.Import.DefaultPivot = p
	}
	if *flagForcePivot {
		cfg.Import.ForcePivotOverwrite = true
	}
	if *flagDropEmpty {
		cfg.Import.DropEmptyFrames = true
	}
	if *flagFPS > 0 {
		cfg.Import.FrameRate = *flagFPS
	}
	if *flagHeight > 0 {
		cfg.Import.AtlasHeight = *flagHeight
	}
	if *flagFormat != "" {
		cfg.Output.Format = strings.ToLower(*flagFormat)
	}
	if *flagAux {
		cfg.Output.Auxiliary = true
	}
	return nil
}

// ParsePivot parses "x,y" into a pivot. The comma separates the two values,
// so both must use a period as decimal separator.
func ParsePivot(s string) (PivotConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return PivotConfig{}, fmt.Errorf("%w: pivot %q must be x,y", ErrInvalidConfig, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return PivotConfig{}, fmt.Errorf("%w: pivot x %q", ErrInvalidConfig, parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return PivotConfig{}, fmt.Errorf("%w: pivot y %q", ErrInvalidConfig, parts[1])
	}
	return PivotConfig{X: x, Y: y}, nil
}
