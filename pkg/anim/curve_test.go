package anim

import (
	"errors"
	"math"
	"testing"

	"github.com/Faultbox/starling-atlas/pkg/atlas"
	pmath "github.com/Faultbox/starling-atlas/pkg/math"
)

const eps = 1e-9

func TestSteppedTiming(t *testing.T) {
	c, err := Stepped([]string{"a", "b", "c"}, 10)
	if err != nil {
		t.Fatalf("Stepped: %v", err)
	}
	if len(c) != 6 {
		t.Fatalf("expected 6 keys, got %d", len(c))
	}

	start, end := c[4], c[5]
	if math.Abs(start.Time-0.2) > eps {
		t.Errorf("expected hold start at 0.2, got %v", start.Time)
	}
	if math.Abs(end.Time-0.2999) > eps {
		t.Errorf("expected hold end at 0.2999, got %v", end.Time)
	}
	if start.Value != "c" || end.Value != "c" {
		t.Errorf("expected both keys to hold c, got %q and %q", start.Value, end.Value)
	}

	for i, k := range c {
		if k.InTangent != 0 || k.OutTangent != 0 {
			t.Errorf("key %d: expected flat tangents, got %v/%v", i, k.InTangent, k.OutTangent)
		}
		if i > 0 && !(k.Time > c[i-1].Time) {
			t.Errorf("key %d: time %v does not follow %v", i, k.Time, c[i-1].Time)
		}
	}
}

func TestSteppedInvalidFrameRate(t *testing.T) {
	for _, fps := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		if _, err := Stepped([]float64{1}, fps); !errors.Is(err, ErrInvalidFrameRate) {
			t.Errorf("fps %v: expected ErrInvalidFrameRate, got %v", fps, err)
		}
	}
}

func TestSteppedEmpty(t *testing.T) {
	c, err := Stepped([]int(nil), 24)
	if err != nil {
		t.Fatalf("Stepped: %v", err)
	}
	if len(c) != 0 || c.End() != 0 {
		t.Errorf("expected empty curve, got %v", c)
	}
}

func TestCurveSample(t *testing.T) {
	c, err := Stepped([]float64{1, 2, 3}, 4)
	if err != nil {
		t.Fatalf("Stepped: %v", err)
	}

	tests := []struct {
		t    float64
		want float64
		ok   bool
	}{
		{-0.1, 0, false},
		{0, 1, true},
		{0.2, 1, true},
		{0.25, 2, true},
		{0.74, 3, true},
		{10, 3, true},
	}
	for _, tt := range tests {
		got, ok := c.Sample(tt.t)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Sample(%v) = (%v, %v), want (%v, %v)", tt.t, got, ok, tt.want, tt.ok)
		}
	}
}

func testSequence() Sequence {
	return Sequence{
		Name:      "walk",
		FrameRate: 10,
		Frames: []atlas.FrameGeometry{
			{Name: "walk1", Rect: pmath.Rect{X: 0, Y: 10, Width: 32, Height: 40}, Pivot: pmath.Vec2{X: 0.5, Y: 0}},
			{Name: "walk2", Rect: pmath.Rect{X: 32, Y: 12, Width: 30, Height: 38}, Pivot: pmath.Vec2{X: 0.4, Y: 0.1}},
		},
	}
}

func TestSpriteCurve(t *testing.T) {
	c, err := SpriteCurve(testSequence())
	if err != nil {
		t.Fatalf("SpriteCurve: %v", err)
	}
	want := []string{"walk1", "walk1", "walk2", "walk2"}
	if len(c) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(c))
	}
	for i, w := range want {
		if c[i].Value != w {
			t.Errorf("key %d: expected %q, got %q", i, w, c[i].Value)
		}
	}
}

func TestScalarCurveLengthMismatch(t *testing.T) {
	_, err := ScalarCurve(testSequence(), []float64{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}

	c, err := ScalarCurve(testSequence(), []float64{1, 2})
	if err != nil {
		t.Fatalf("ScalarCurve: %v", err)
	}
	if c[2].Value != 2 {
		t.Errorf("expected second frame value 2, got %v", c[2].Value)
	}
}

func TestAuxiliaryCurves(t *testing.T) {
	tracks, err := AuxiliaryCurves(testSequence())
	if err != nil {
		t.Fatalf("AuxiliaryCurves: %v", err)
	}

	checks := []struct {
		name  string
		curve Curve[float64]
		want  [2]float64
	}{
		{"x", tracks.X, [2]float64{0, 32}},
		{"y", tracks.Y, [2]float64{10, 12}},
		{"width", tracks.Width, [2]float64{32, 30}},
		{"height", tracks.Height, [2]float64{40, 38}},
		{"pivot_x", tracks.PivotX, [2]float64{0.5, 0.4}},
		{"pivot_y", tracks.PivotY, [2]float64{0, 0.1}},
	}
	for _, ck := range checks {
		if len(ck.curve) != 4 {
			t.Errorf("%s: expected 4 keys, got %d", ck.name, len(ck.curve))
			continue
		}
		if ck.curve[0].Value != ck.want[0] || ck.curve[1].Value != ck.want[0] {
			t.Errorf("%s: frame 0 expected %v, got %v/%v", ck.name, ck.want[0], ck.curve[0].Value, ck.curve[1].Value)
		}
		if ck.curve[2].Value != ck.want[1] || ck.curve[3].Value != ck.want[1] {
			t.Errorf("%s: frame 1 expected %v, got %v/%v", ck.name, ck.want[1], ck.curve[2].Value, ck.curve[3].Value)
		}
	}
}

func TestBuildClips(t *testing.T) {
	seqs := []Sequence{testSequence()}

	clips, err := BuildClips(seqs, false)
	if err != nil {
		t.Fatalf("BuildClips: %v", err)
	}
	if len(clips) != 1 || clips[0].Name != "walk" || clips[0].Auxiliary != nil {
		t.Errorf("unexpected clips: %+v", clips)
	}

	clips, err = BuildClips(seqs, true)
	if err != nil {
		t.Fatalf("BuildClips: %v", err)
	}
	if clips[0].Auxiliary == nil {
		t.Error("expected auxiliary tracks")
	}

	bad := testSequence()
	bad.FrameRate = 0
	if _, err := BuildClips([]Sequence{bad}, false); !errors.Is(err, ErrInvalidFrameRate) {
		t.Errorf("expected ErrInvalidFrameRate, got %v", err)
	}
}
