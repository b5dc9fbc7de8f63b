// Package anim groups atlas frames into animation sequences and builds
// stepped (hold) keyframe curves for them.
package anim

import (
	"math"
	"strconv"

	"github.com/Faultbox/starling-atlas/pkg/atlas"
)

// Sequence is a contiguous run of frames destined to become one clip.
// Frames is never empty.
type Sequence struct {
	Name      string                `json:"name" yaml:"name"`
	FrameRate float64               `json:"frame_rate" yaml:"frame_rate"`
	Frames    []atlas.FrameGeometry `json:"frames" yaml:"frames"`
}

// Duration returns the playback length in seconds, len(Frames)/FrameRate.
func (s Sequence) Duration() float64 {
	if s.FrameRate <= 0 {
		return 0
	}
	return float64(len(s.Frames)) / s.FrameRate
}

// FrameNames returns the frame names in playback order.
func (s Sequence) FrameNames() []string {
	names := make([]string, len(s.Frames))
	for i, f := range s.Frames {
		names[i] = f.Name
	}
	return names
}

// SplitName separates a trailing run of ASCII digits from name. A name with
// no trailing digits, or made only of digits, has no number and its base is
// the whole name. Digit runs too large for uint64 also count as no number.
func SplitName(name string) (base string, number uint64, ok bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) || i == 0 {
		return name, 0, false
	}

	n, err := strconv.ParseUint(name[i:], 10, 64)
	if err != nil {
		return name, 0, false
	}
	return name[:i], n, true
}

// Segment partitions frames, in atlas order, into sequences. A frame
// continues the current run when it carries the next number after the
// previous frame with the same base, or when neither it nor the previous
// frame is numbered; anything else starts a new run.
//
// Note: a run is named after the base of the frame that opened it. For
// numbered runs that is the shared base of every member (walk1, walk2 ->
// "walk"), so two broken-off runs of the same animation get the same name.
// Unnumbered frames are lumped into one sequence named after the first of
// them rather than after the last frame seen when the run closes
// (blank, icon -> "blank"). Downstream consumers rely on this naming; keep it.
func Segment(frames []atlas.FrameGeometry, frameRate float64) []Sequence {
	var (
		out      []Sequence
		run      []atlas.FrameGeometry
		runName  string
		lastBase string
		lastNum  uint64
		lastOK   bool
	)

	closeRun := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, Sequence{Name: runName, FrameRate: frameRate, Frames: run})
		run = nil
	}

	for i, f := range frames {
		base, num, ok := SplitName(f.Name)

		contiguous := ok && lastOK && lastNum < math.MaxUint64 &&
			num == lastNum+1 && base == lastBase
		unnumbered := !ok && !lastOK

		if i == 0 || !(contiguous || unnumbered) {
			closeRun()
			runName = base
		}
		run = append(run, f)

		lastBase, lastNum, lastOK = base, num, ok
	}
	closeRun()

	return out
}
