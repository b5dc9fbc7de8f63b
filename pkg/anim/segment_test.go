package anim

import (
	"reflect"
	"testing"

	"github.com/Faultbox/starling-atlas/pkg/atlas"
)

func framesNamed(names ...string) []atlas.FrameGeometry {
	frames := make([]atlas.FrameGeometry, len(names))
	for i, n := range names {
		frames[i] = atlas.FrameGeometry{Name: n}
	}
	return frames
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		number uint64
		ok     bool
	}{
		{"walk001", "walk", 1, true},
		{"walk_12", "walk_", 12, true},
		{"run10", "run", 10, true},
		{"icon", "icon", 0, false},
		{"123", "123", 0, false},
		{"", "", 0, false},
		{"a1b", "a1b", 0, false},
		{"x99999999999999999999999", "x99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, number, ok := SplitName(tt.name)
			if base != tt.base || number != tt.number || ok != tt.ok {
				t.Errorf("SplitName(%q) = (%q, %d, %v), want (%q, %d, %v)",
					tt.name, base, number, ok, tt.base, tt.number, tt.ok)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	type seq struct {
		name   string
		frames []string
	}

	tests := []struct {
		name   string
		frames []string
		want   []seq
	}{
		{
			name:   "contiguous break",
			frames: []string{"walk1", "walk2", "walk4"},
			want: []seq{
				{"walk", []string{"walk1", "walk2"}},
				{"walk", []string{"walk4"}},
			},
		},
		{
			name:   "unnumbered lumped",
			frames: []string{"icon", "badge", "logo"},
			want: []seq{
				{"icon", []string{"icon", "badge", "logo"}},
			},
		},
		{
			name:   "unnumbered named after first",
			frames: []string{"hero_walk0002", "blank", "icon"},
			want: []seq{
				{"hero_walk", []string{"hero_walk0002"}},
				{"blank", []string{"blank", "icon"}},
			},
		},
		{
			name:   "prefix change",
			frames: []string{"idle0001", "idle0002", "run0003", "run0004"},
			want: []seq{
				{"idle", []string{"idle0001", "idle0002"}},
				{"run", []string{"run0003", "run0004"}},
			},
		},
		{
			name:   "zero padded rollover",
			frames: []string{"jump009", "jump010", "jump011"},
			want: []seq{
				{"jump", []string{"jump009", "jump010", "jump011"}},
			},
		},
		{
			name:   "numbered then unnumbered",
			frames: []string{"walk1", "walk2", "icon", "logo", "run1"},
			want: []seq{
				{"walk", []string{"walk1", "walk2"}},
				{"icon", []string{"icon", "logo"}},
				{"run", []string{"run1"}},
			},
		},
		{
			name:   "repeated number",
			frames: []string{"hit1", "hit1"},
			want: []seq{
				{"hit", []string{"hit1"}},
				{"hit", []string{"hit1"}},
			},
		},
		{
			name:   "all digits",
			frames: []string{"1", "2"},
			want: []seq{
				{"1", []string{"1", "2"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(framesNamed(tt.frames...), 12)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d sequences, got %d: %+v", len(tt.want), len(got), got)
			}
			for i, w := range tt.want {
				if got[i].Name != w.name {
					t.Errorf("sequence %d: expected name %q, got %q", i, w.name, got[i].Name)
				}
				if names := got[i].FrameNames(); !reflect.DeepEqual(names, w.frames) {
					t.Errorf("sequence %d: expected frames %v, got %v", i, w.frames, names)
				}
				if got[i].FrameRate != 12 {
					t.Errorf("sequence %d: expected frame rate 12, got %v", i, got[i].FrameRate)
				}
			}
		})
	}
}

func TestSegmentEmpty(t *testing.T) {
	if got := Segment(nil, 24); len(got) != 0 {
		t.Errorf("expected no sequences, got %d", len(got))
	}
}

func TestSequenceDuration(t *testing.T) {
	s := Sequence{FrameRate: 10, Frames: framesNamed("a1", "a2", "a3")}
	if got := s.Duration(); got != 0.3 {
		t.Errorf("expected duration 0.3, got %v", got)
	}
	if got := (Sequence{Frames: framesNamed("a")}).Duration(); got != 0 {
		t.Errorf("expected duration 0 without frame rate, got %v", got)
	}
}
