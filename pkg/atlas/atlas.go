// Package atlas turns Starling/Sparrow texture atlas descriptors into frame
// geometry: packed rectangles flipped to a Y-up space and pivots resolved in
// unit coordinates.
//
// The package performs no logging and keeps no state between calls; each
// Parse call is one pass over one atlas.
package atlas

import (
	"fmt"

	"github.com/Faultbox/starling-atlas/pkg/math"
)

// FrameGeometry is one sliced frame. Rect is in the Y-up space of the atlas
// image (origin bottom-left); Pivot is in unit space of Rect and is never NaN.
type FrameGeometry struct {
	Name  string    `json:"name" yaml:"name"`
	Rect  math.Rect `json:"rect" yaml:"rect"`
	Pivot math.Vec2 `json:"pivot" yaml:"pivot"`
}

// Descriptor converts the frame back into a source-space descriptor without
// pivot attributes, so it can be fed to Parse again.
func (f FrameGeometry) Descriptor(atlasHeight float64) FrameDescriptor {
	r := f.Rect.FlipY(atlasHeight)
	return FrameDescriptor{
		Name:   f.Name,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Options controls a parse pass.
type Options struct {
	// AtlasHeight is the image height used to flip rectangles to Y-up.
	AtlasHeight float64

	// DefaultPivot seeds the running pivot, in unit space (Y up).
	DefaultPivot math.Vec2

	// ForcePivotOverwrite ignores pivotX/pivotY in the descriptor so every
	// frame uses DefaultPivot (still trim-corrected).
	ForcePivotOverwrite bool

	// DropEmptyFrames skips frames with zero width or height. By default
	// they are kept, since blank frames are valid animation frames.
	DropEmptyFrames bool
}

// DefaultOptions returns options with a centered pivot.
func DefaultOptions(atlasHeight float64) Options {
	return Options{
		AtlasHeight:  atlasHeight,
		DefaultPivot: math.Vec2{X: 0.5, Y: 0.5},
	}
}

// Parse resolves geometry for frames in declaration order. It returns
// ErrEmptyAtlas when no frame survives.
func Parse(frames []FrameDescriptor, opts Options) ([]FrameGeometry, error) {
	state := NewPivotState(opts.DefaultPivot)
	out := make([]FrameGeometry, 0, len(frames))

	for _, d := range frames {
		var pivot math.Vec2
		state, pivot = ResolvePivot(state, d, opts.ForcePivotOverwrite)

		src := d.Rect()
		if opts.DropEmptyFrames && src.Empty() {
			continue
		}

		out = append(out, FrameGeometry{
			Name:  d.Name,
			Rect:  src.FlipY(opts.AtlasHeight),
			Pivot: pivot,
		})
	}

	if len(out) == 0 {
		return nil, ErrEmptyAtlas
	}
	return out, nil
}

// ParseRecords decodes records and resolves their geometry. A malformed
// record fails the whole pass with no partial result.
func ParseRecords(records []Record, opts Options) ([]FrameGeometry, error) {
	frames, err := DecodeFrames(records)
	if err != nil {
		return nil, err
	}
	return Parse(frames, opts)
}

// ParseXML decodes descriptor XML and resolves its geometry.
func ParseXML(data []byte, opts Options) ([]FrameGeometry, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	frames, err := ParseRecords(doc.Records, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing atlas %q: %w", doc.ImagePath, err)
	}
	return frames, nil
}
