package session

import (
	"time"

	"github.com/abhisek/vigil/internal/classifier"
	"github.com/abhisek/vigil/internal/compliance"
	"github.com/abhisek/vigil/internal/tracker"
	"github.com/abhisek/vigil/internal/violation"
)

// DefaultSampleInterval is the frame sampling cadence (10 fps).
const DefaultSampleInterval = 100 * time.Millisecond

// Config aggregates the per-stage configuration for a proctoring
// session. Zero-valued sections fall back to each stage's defaults.
type Config struct {
	// SampleInterval is how often the detector is polled for a frame.
	SampleInterval time.Duration

	Classifier classifier.Config
	Tracker    tracker.Config
	Throttle   violation.Config
	Compliance compliance.Config
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		SampleInterval: DefaultSampleInterval,
		Classifier:     classifier.DefaultConfig(),
		Tracker:        tracker.DefaultConfig(),
		Throttle:       violation.DefaultThrottleConfig(),
		Compliance:     compliance.DefaultConfig(),
	}
}
