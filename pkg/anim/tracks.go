package anim

import (
	"fmt"

	"github.com/Faultbox/starling-atlas/pkg/atlas"
)

// SpriteCurve builds the renderer-native curve for a sequence: one hold per
// frame, keyed by frame name.
func SpriteCurve(seq Sequence) (Curve[string], error) {
	return Stepped(seq.FrameNames(), seq.FrameRate)
}

// ScalarCurve builds a hold curve from one value per frame of seq.
func ScalarCurve(seq Sequence, values []float64) (Curve[float64], error) {
	if len(values) != len(seq.Frames) {
		return nil, fmt.Errorf("%w: %d values for %d frames", ErrLengthMismatch, len(values), len(seq.Frames))
	}
	return Stepped(values, seq.FrameRate)
}

// AuxiliaryTracks are the per-frame rect and pivot curves needed by
// renderers that have no notion of a per-frame source rectangle.
type AuxiliaryTracks struct {
	X      Curve[float64] `json:"x" yaml:"x"`
	Y      Curve[float64] `json:"y" yaml:"y"`
	Width  Curve[float64] `json:"width" yaml:"width"`
	Height Curve[float64] `json:"height" yaml:"height"`
	PivotX Curve[float64] `json:"pivot_x" yaml:"pivot_x"`
	PivotY Curve[float64] `json:"pivot_y" yaml:"pivot_y"`
}

// AuxiliaryCurves builds rect and pivot hold curves for a sequence.
func AuxiliaryCurves(seq Sequence) (*AuxiliaryTracks, error) {
	tracks := &AuxiliaryTracks{}
	fields := []struct {
		dst *Curve[float64]
		get func(atlas.FrameGeometry) float64
	}{
		{&tracks.X, func(f atlas.FrameGeometry) float64 { return f.Rect.X }},
		{&tracks.Y, func(f atlas.FrameGeometry) float64 { return f.Rect.Y }},
		{&tracks.Width, func(f atlas.FrameGeometry) float64 { return f.Rect.Width }},
		{&tracks.Height, func(f atlas.FrameGeometry) float64 { return f.Rect.Height }},
		{&tracks.PivotX, func(f atlas.FrameGeometry) float64 { return f.Pivot.X }},
		{&tracks.PivotY, func(f atlas.FrameGeometry) float64 { return f.Pivot.Y }},
	}

	for _, field := range fields {
		values := make([]float64, len(seq.Frames))
		for i, f := range seq.Frames {
			values[i] = field.get(f)
		}
		c, err := Stepped(values, seq.FrameRate)
		if err != nil {
			return nil, err
		}
		*field.dst = c
	}
	return tracks, nil
}

// Clip bundles the curves built for one sequence.
type Clip struct {
	Name      string           `json:"name" yaml:"name"`
	FrameRate float64          `json:"frame_rate" yaml:"frame_rate"`
	Sprite    Curve[string]    `json:"sprite" yaml:"sprite"`
	Auxiliary *AuxiliaryTracks `json:"auxiliary,omitempty" yaml:"auxiliary,omitempty"`
}

// BuildClips builds the sprite curve, and optionally the auxiliary tracks,
// for every sequence.
func BuildClips(seqs []Sequence, auxiliary bool) ([]Clip, error) {
	clips := make([]Clip, 0, len(seqs))
	for _, seq := range seqs {
		sprite, err := SpriteCurve(seq)
		if err != nil {
			return nil, fmt.Errorf("building sprite curve for %q: %w", seq.Name, err)
		}

		clip := Clip{Name: seq.Name, FrameRate: seq.FrameRate, Sprite: sprite}
		if auxiliary {
			clip.Auxiliary, err = AuxiliaryCurves(seq)
			if err != nil {
				return nil, fmt.Errorf("building auxiliary curves for %q: %w", seq.Name, err)
			}
		}
		clips = append(clips, clip)
	}
	return clips, nil
}
