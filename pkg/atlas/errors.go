package atlas

import "errors"

// Atlas parsing errors.
var (
	// ErrMalformedDescriptor means the descriptor could not be decoded into
	// records, or a numeric attribute is not a finite decimal literal. No
	// frames are returned alongside it.
	ErrMalformedDescriptor = errors.New("malformed atlas descriptor")

	// ErrEmptyAtlas signals that a pass produced no frames. It is a "no
	// result" outcome, not a failure; callers decide whether it matters.
	ErrEmptyAtlas = errors.New("atlas contains no frames")
)
