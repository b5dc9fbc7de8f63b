package math

// Rect is an axis-aligned rectangle given by its origin corner and size.
// Which corner is the origin depends on the coordinate space: atlas
// descriptors use top-left (Y down), frame geometry uses bottom-left (Y up).
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width, r.Height}
}

// Empty reports whether the rectangle has zero width or height.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// FlipY mirrors the rectangle vertically inside a space of the given height,
// converting between top-left/Y-down and bottom-left/Y-up conventions.
// Applying it twice with the same height yields the original rectangle.
func (r Rect) FlipY(spaceHeight float64) Rect {
	return Rect{
		X:      r.X,
		Y:      spaceHeight - r.Y - r.Height,
		Width:  r.Width,
		Height: r.Height,
	}
}
