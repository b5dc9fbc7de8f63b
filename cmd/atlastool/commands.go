package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/starling-atlas/internal/config"
	"github.com/Faultbox/starling-atlas/internal/logger"
	"github.com/Faultbox/starling-atlas/pkg/anim"
)

func cmdFrames(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: atlastool frames <atlas.xml>", errUsage)
	}

	frames, err := loadFrames(args[0], cfg)
	if err != nil {
		return err
	}

	if cfg.Output.Format != config.FormatTable {
		return writeEncoded(w, cfg.Output.Format, frames)
	}

	rows := make([][]string, 0, len(frames))
	for _, f := range frames {
		rows = append(rows, []string{
			f.Name,
			formatNumber(f.Rect.X),
			formatNumber(f.Rect.Y),
			formatNumber(f.Rect.Width),
			formatNumber(f.Rect.Height),
			formatUnit(f.Pivot.X),
			formatUnit(f.Pivot.Y),
		})
	}
	headers := []string{"Name", "X", "Y", "Width", "Height", "Pivot X", "Pivot Y"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	fmt.Fprintln(w, renderTable(headers, rows, aligns))
	fmt.Fprintf(w, "%d frames\n", len(frames))
	return nil
}

func cmdSequences(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: atlastool sequences <atlas.xml>", errUsage)
	}

	seqs, err := loadSequences(args[0], cfg)
	if err != nil {
		return err
	}

	if cfg.Output.Format != config.FormatTable {
		return writeEncoded(w, cfg.Output.Format, sequenceSummaries(seqs))
	}

	rows := make([][]string, 0, len(seqs))
	for _, s := range seqs {
		names := s.FrameNames()
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", len(s.Frames)),
			formatNumber(s.FrameRate),
			fmt.Sprintf("%.3fs", s.Duration()),
			names[0],
			names[len(names)-1],
		})
	}
	headers := []string{"Sequence", "Frames", "FPS", "Duration", "First", "Last"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft}
	fmt.Fprintln(w, renderTable(headers, rows, aligns))
	fmt.Fprintf(w, "%d sequences\n", len(seqs))
	return nil
}

func cmdCurves(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: atlastool curves <atlas.xml> [sequence]", errUsage)
	}

	seqs, err := loadSequences(args[0], cfg)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		seqs = filterSequences(seqs, args[1])
		if len(seqs) == 0 {
			return fmt.Errorf("sequence not found: %s", args[1])
		}
	}

	clips, err := anim.BuildClips(seqs, cfg.Output.Auxiliary)
	if err != nil {
		return err
	}
	logger.Debug("curves built", zap.Int("clips", len(clips)))

	if cfg.Output.Format != config.FormatTable {
		return writeEncoded(w, cfg.Output.Format, clips)
	}

	var rows [][]string
	for _, c := range clips {
		for i, k := range c.Sprite {
			row := []string{c.Name, fmt.Sprintf("%.4f", k.Time), k.Value}
			if c.Auxiliary != nil {
				row = append(row,
					formatUnit(c.Auxiliary.PivotX[i].Value),
					formatUnit(c.Auxiliary.PivotY[i].Value),
				)
			}
			rows = append(rows, row)
		}
	}
	headers := []string{"Sequence", "Time", "Sprite"}
	aligns := []columnAlignment{alignLeft, alignRight, alignLeft}
	if cfg.Output.Auxiliary {
		headers = append(headers, "Pivot X", "Pivot Y")
		aligns = append(aligns, alignRight, alignRight)
	}
	fmt.Fprintln(w, renderTable(headers, rows, aligns))
	return nil
}

func cmdConfig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) > 0 && args[0] == "save" {
		if len(args) > 1 {
			if err := cfg.SaveTo(args[1]); err != nil {
				return err
			}
			fmt.Fprintf(w, "Saved: %s\n", args[1])
			return nil
		}
		path, err := cfg.Save()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Saved: %s\n", path)
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// filterSequences keeps sequences with the given name. Broken-off runs of
// one animation share a name, so more than one may match.
func filterSequences(seqs []anim.Sequence, name string) []anim.Sequence {
	var out []anim.Sequence
	for _, s := range seqs {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

type sequenceSummary struct {
	Name      string   `json:"name" yaml:"name"`
	FrameRate float64  `json:"frame_rate" yaml:"frame_rate"`
	Duration  float64  `json:"duration" yaml:"duration"`
	Frames    []string `json:"frames" yaml:"frames"`
}

func sequenceSummaries(seqs []anim.Sequence) []sequenceSummary {
	out := make([]sequenceSummary, 0, len(seqs))
	for _, s := range seqs {
		out = append(out, sequenceSummary{
			Name:      s.Name,
			FrameRate: s.FrameRate,
			Duration:  s.Duration(),
			Frames:    s.FrameNames(),
		})
	}
	return out
}
