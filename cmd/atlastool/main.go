// atlastool is a CLI utility for slicing Starling/Sparrow texture atlases
// into frames, animation sequences and stepped keyframe curves.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/starling-atlas/internal/config"
	"github.com/Faultbox/starling-atlas/internal/logger"
	"github.com/Faultbox/starling-atlas/pkg/anim"
	"github.com/Faultbox/starling-atlas/pkg/atlas"
	"github.com/Faultbox/starling-atlas/pkg/math"
)

var errUsage = errors.New("usage")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Stdout, cfg, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			if err != errUsage {
				fmt.Fprintf(os.Stderr, "%v\n\n", err)
			}
			printUsage(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logger.Sync()
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errUsage
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "frames", "ls":
		return cmdFrames(w, cfg, args)
	case "sequences", "seq":
		return cmdSequences(w, cfg, args)
	case "curves":
		return cmdCurves(w, cfg, args)
	case "config":
		return cmdConfig(w, cfg, args)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %s", errUsage, command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `atlastool - Starling/Sparrow texture atlas utility

Usage:
  atlastool [flags] <command> [arguments]

Commands:
  frames <atlas.xml>               List frames with flipped rects and resolved pivots
  sequences <atlas.xml>            List animation sequences
  curves <atlas.xml> [sequence]    Print stepped keyframe curves
  config [save [path]]             Print or save the effective configuration

Flags:
  -config <file>     Config file (default ./atlastool.yaml or user config dir)
  -height <px>       Atlas image height (default: frame extent)
  -pivot <x,y>       Default pivot in unit space, Y up
  -force-pivot       Ignore pivotX/pivotY in the descriptor
  -drop-empty        Skip zero-size frames
  -fps <n>           Animation frame rate
  -format <f>        table, yaml or json
  -aux               Include rect and pivot curves
  -debug             Debug logging
  -log-file <file>   Also log to a rotating file

Examples:
  atlastool -height 512 frames hero.xml
  atlastool -fps 12 sequences hero.xml
  atlastool -format yaml -aux curves hero.xml hero_walk`)
}

// loadFrames reads and resolves one atlas. An empty atlas is not an error
// here; it is logged and yields no frames.
func loadFrames(path string, cfg *config.Config) ([]atlas.FrameGeometry, error) {
	doc, err := atlas.ParseDocumentFile(path)
	if err != nil {
		return nil, err
	}

	descs, err := atlas.DecodeFrames(doc.Records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	height := cfg.Import.AtlasHeight
	if height == 0 {
		height = atlas.Extent(descs)
		logger.Warn("atlas height not set, using frame extent",
			zap.String("atlas", path), zap.Float64("height", height))
	}

	opts := atlas.Options{
		AtlasHeight:         height,
		DefaultPivot:        math.Vec2{X: cfg.Import.DefaultPivot.X, Y: cfg.Import.DefaultPivot.Y},
		ForcePivotOverwrite: cfg.Import.ForcePivotOverwrite,
		DropEmptyFrames:     cfg.Import.DropEmptyFrames,
	}

	frames, err := atlas.Parse(descs, opts)
	if errors.Is(err, atlas.ErrEmptyAtlas) {
		logger.Warn("no sprites found", zap.String("atlas", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, f := range frames {
		logger.Debug("frame",
			zap.String("name", f.Name),
			zap.Float64("x", f.Rect.X),
			zap.Float64("y", f.Rect.Y),
			zap.Float64("width", f.Rect.Width),
			zap.Float64("height", f.Rect.Height),
			zap.Float64("pivot_x", f.Pivot.X),
			zap.Float64("pivot_y", f.Pivot.Y),
		)
	}
	logger.Info("atlas parsed",
		zap.String("atlas", path),
		zap.String("image", doc.ImagePath),
		zap.Int("frames", len(frames)),
	)

	return frames, nil
}

func loadSequences(path string, cfg *config.Config) ([]anim.Sequence, error) {
	frames, err := loadFrames(path, cfg)
	if err != nil {
		return nil, err
	}
	seqs := anim.Segment(frames, cfg.Import.FrameRate)
	logger.Info("sequences built", zap.String("atlas", path), zap.Int("sequences", len(seqs)))
	return seqs, nil
}
