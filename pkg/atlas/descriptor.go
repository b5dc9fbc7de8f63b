package atlas

import (
	"fmt"

	"github.com/Faultbox/starling-atlas/pkg/math"
)

// Descriptor attribute names, as written by Starling/Sparrow exporters.
const (
	AttrName        = "name"
	AttrX           = "x"
	AttrY           = "y"
	AttrWidth       = "width"
	AttrHeight      = "height"
	AttrPivotX      = "pivotX"
	AttrPivotY      = "pivotY"
	AttrFrameX      = "frameX"
	AttrFrameY      = "frameY"
	AttrFrameWidth  = "frameWidth"
	AttrFrameHeight = "frameHeight"
)

// FrameDescriptor is one decoded descriptor element. X, Y, Width and Height
// locate the packed rectangle in the atlas (top-left origin, Y down).
// Optional fields are nil when the attribute is missing.
type FrameDescriptor struct {
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Declared pivot in pixels within the untrimmed frame, Y down.
	PivotX *float64
	PivotY *float64

	// Trim metadata: offset and size of the frame before whitespace trim.
	FrameX      *float64
	FrameY      *float64
	FrameWidth  *float64
	FrameHeight *float64
}

// Opt returns a pointer to v, for filling optional descriptor fields.
func Opt(v float64) *float64 {
	return &v
}

// HasPivot reports whether the descriptor declares either pivot axis.
func (d FrameDescriptor) HasPivot() bool {
	return d.PivotX != nil || d.PivotY != nil
}

// UntrimmedWidth returns frameWidth, or width when no trim data is present.
func (d FrameDescriptor) UntrimmedWidth() float64 {
	return valueOr(d.FrameWidth, d.Width)
}

// UntrimmedHeight returns frameHeight, or height when no trim data is present.
func (d FrameDescriptor) UntrimmedHeight() float64 {
	return valueOr(d.FrameHeight, d.Height)
}

// Rect returns the packed rectangle in source space (top-left, Y down).
func (d FrameDescriptor) Rect() math.Rect {
	return math.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// DecodeFrame reads a FrameDescriptor from a record. Missing geometry
// attributes default to 0; any present numeric attribute that fails to
// parse yields ErrMalformedDescriptor.
func DecodeFrame(r Record) (FrameDescriptor, error) {
	d := FrameDescriptor{Name: r.Get(AttrName, "")}

	required := []struct {
		key string
		dst *float64
	}{
		{AttrX, &d.X},
		{AttrY, &d.Y},
		{AttrWidth, &d.Width},
		{AttrHeight, &d.Height},
	}
	for _, f := range required {
		v, err := r.Float(f.key, 0)
		if err != nil {
			return FrameDescriptor{}, err
		}
		*f.dst = v
	}

	optional := []struct {
		key string
		dst **float64
	}{
		{AttrPivotX, &d.PivotX},
		{AttrPivotY, &d.PivotY},
		{AttrFrameX, &d.FrameX},
		{AttrFrameY, &d.FrameY},
		{AttrFrameWidth, &d.FrameWidth},
		{AttrFrameHeight, &d.FrameHeight},
	}
	for _, f := range optional {
		v, err := r.OptionalFloat(f.key)
		if err != nil {
			return FrameDescriptor{}, err
		}
		*f.dst = v
	}

	return d, nil
}

// DecodeFrames decodes every record in order. The first malformed record
// aborts the whole pass.
func DecodeFrames(records []Record) ([]FrameDescriptor, error) {
	frames := make([]FrameDescriptor, 0, len(records))
	for i, r := range records {
		d, err := DecodeFrame(r)
		if err != nil {
			return nil, fmt.Errorf("decoding frame %d (%q): %w", i, r.Get(AttrName, ""), err)
		}
		frames = append(frames, d)
	}
	return frames, nil
}

// Extent returns the smallest atlas height that contains every frame,
// max(y + height). Useful when the image height is not known.
func Extent(frames []FrameDescriptor) float64 {
	var h float64
	for _, f := range frames {
		if bottom := f.Y + f.Height; bottom > h {
			h = bottom
		}
	}
	return h
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
