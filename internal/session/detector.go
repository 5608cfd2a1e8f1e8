package session

import (
	"context"

	"github.com/abhisek/vigil/internal/landmark"
)

// Detector produces landmark frames from a capture source: a live
// camera pipeline, a recorded frame log, or a test fixture. Detect
// returns nil with no error when the source has no frame ready; the
// session treats that as a skipped tick.
type Detector interface {
	Detect(ctx context.Context) (*landmark.Frame, error)
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(ctx context.Context) (*landmark.Frame, error)

func (f DetectorFunc) Detect(ctx context.Context) (*landmark.Frame, error) {
	return f(ctx)
}
