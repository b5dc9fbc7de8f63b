// Package config handles atlastool configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// ErrInvalidConfig is returned for config values or files that are rejected.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all atlastool settings.
type Config struct {
	Import  ImportConfig  `yaml:"import"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// PivotConfig is a pivot in unit space of a frame, Y up.
type PivotConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ImportConfig holds the settings of a parse pass.
type ImportConfig struct {
	DefaultPivot        PivotConfig `yaml:"default_pivot"`
	ForcePivotOverwrite bool        `yaml:"force_pivot_overwrite"`
	DropEmptyFrames     bool        `yaml:"drop_empty_frames"`
	FrameRate           float64     `yaml:"frame_rate"`
	AtlasHeight         float64     `yaml:"atlas_height"` // 0 = derive from frame extent
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format    string `yaml:"format"`    // table, yaml or json
	Auxiliary bool   `yaml:"auxiliary"` // include rect/pivot curves
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			DefaultPivot:        PivotConfig{X: 0.5, Y: 0.5},
			ForcePivotOverwrite: false,
			DropEmptyFrames:     false,
			FrameRate:           24,
			AtlasHeight:         0,
		},
		Output: OutputConfig{
			Format:    FormatTable,
			Auxiliary: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would make a pass meaningless.
func (c *Config) Validate() error {
	fps := c.Import.FrameRate
	if !(fps > 0) || math.IsInf(fps, 0) {
		return fmt.Errorf("%w: frame_rate must be positive, got %v", ErrInvalidConfig, fps)
	}
	if c.Import.AtlasHeight < 0 {
		return fmt.Errorf("%w: atlas_height must not be negative, got %v", ErrInvalidConfig, c.Import.AtlasHeight)
	}
	switch c.Output.Format {
	case FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}
