package atlas

import "github.com/Faultbox/starling-atlas/pkg/math"

// PivotState is the running pivot carried from one frame to the next during
// a single parse pass. Starling only writes pivotX/pivotY on the frame where
// the pivot changes, so frames without the attributes inherit Input.
type PivotState struct {
	Input math.Vec2 // carried pivot, unit space of the untrimmed frame, Y up
}

// NewPivotState starts a pass from the caller's default pivot.
func NewPivotState(defaultPivot math.Vec2) PivotState {
	return PivotState{Input: defaultPivot}
}

// ResolvePivot folds one frame into the running state and returns the next
// state together with the frame's pivot in unit space of its packed
// (trimmed) rectangle. Values outside [0,1] are legal for off-sprite pivots;
// degenerate frames resolve to (0,0).
func ResolvePivot(s PivotState, d FrameDescriptor, forceOverwrite bool) (PivotState, math.Vec2) {
	in := s.Input
	rect := d.Rect()
	w, h := rect.Width, rect.Height

	// Declared pivots are pixel offsets in the untrimmed frame, Y down.
	// A zero untrimmed size leaves that axis as inherited.
	if !forceOverwrite && d.HasPivot() {
		if fw := d.UntrimmedWidth(); d.PivotX != nil && fw != 0 {
			in.X = *d.PivotX / fw
		}
		if fh := d.UntrimmedHeight(); d.PivotY != nil && fh != 0 {
			in.Y = 1 - *d.PivotY/fh
		}
	}

	px := in.Mul(rect.Size())
	pivot := px
	if w != 0 {
		pivot.X = px.X / w
	}
	if h != 0 {
		pivot.Y = px.Y / h
	}

	// Trim correction: re-express the pivot relative to the packed rectangle.
	if w != 0 && d.FrameX != nil {
		px.X = in.X * d.UntrimmedWidth()
		pivot.X = (px.X + *d.FrameX) / w
	}
	if h != 0 && d.FrameY != nil {
		fh := d.UntrimmedHeight()
		px.Y = in.Y * fh
		pivot.Y = (h+px.Y-*d.FrameY)/h - fh/h
	}

	if rect.Empty() || !pivot.IsFinite() {
		pivot = math.Vec2{}
	}

	return PivotState{Input: in}, pivot
}
