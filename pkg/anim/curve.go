package anim

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// HoldFraction is how much of a frame's duration the hold-end key covers.
// It stays below 1 so a frame's end key never shares a time with the next
// frame's start key.
const HoldFraction = 0.999

// Curve building errors.
var (
	ErrInvalidFrameRate = errors.New("frame rate must be positive and finite")
	ErrLengthMismatch   = errors.New("value count does not match frame count")
)

// Keyframe is one key on a curve. Tangents are always flat.
type Keyframe[V any] struct {
	Time       float64 `json:"time" yaml:"time"`
	Value      V       `json:"value" yaml:"value"`
	InTangent  float64 `json:"in_tangent" yaml:"in_tangent"`
	OutTangent float64 `json:"out_tangent" yaml:"out_tangent"`
}

// Curve is a time-ordered list of keys.
type Curve[V any] []Keyframe[V]

// Stepped builds a hold curve: for frame i it emits keys at i/frameRate and
// (i+HoldFraction)/frameRate, both carrying values[i].
func Stepped[V any](values []V, frameRate float64) (Curve[V], error) {
	if !(frameRate > 0) || math.IsInf(frameRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrameRate, frameRate)
	}

	c := make(Curve[V], 0, 2*len(values))
	for i, v := range values {
		start := float64(i) / frameRate
		end := (float64(i) + HoldFraction) / frameRate
		c = append(c,
			Keyframe[V]{Time: start, Value: v},
			Keyframe[V]{Time: end, Value: v},
		)
	}
	return c, nil
}

// Sample returns the value held at time t, i.e. the value of the last key
// at or before t. It reports false before the first key or on an empty curve.
func (c Curve[V]) Sample(t float64) (V, bool) {
	i := sort.Search(len(c), func(i int) bool { return c[i].Time > t })
	if i == 0 {
		var zero V
		return zero, false
	}
	return c[i-1].Value, true
}

// End returns the time of the last key, or 0 for an empty curve.
func (c Curve[V]) End() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].Time
}
