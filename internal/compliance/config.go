package compliance

// Default compliance parameters.
const (
	DefaultGracePeriodSeconds = 10
	DefaultMaxViolations      = 5
)

// Config tunes the compliance monitor.
type Config struct {
	// GracePeriodSeconds is the remediation window after a breach before
	// a violation is recorded.
	GracePeriodSeconds int

	// MaxViolations is the threshold for MaxViolationsReached. The
	// monitor never terminates anything itself; callers decide.
	MaxViolations int

	// EnableKeyDetection intercepts forbidden key combinations.
	EnableKeyDetection bool

	// EnableTabSwitchDetection treats a hidden document as a breach.
	EnableTabSwitchDetection bool

	// EnableWindowBlurDetection treats lost window focus as a breach.
	EnableWindowBlurDetection bool
}

// DefaultConfig returns the default compliance configuration with all
// detections enabled.
func DefaultConfig() Config {
	return Config{
		GracePeriodSeconds:        DefaultGracePeriodSeconds,
		MaxViolations:             DefaultMaxViolations,
		EnableKeyDetection:        true,
		EnableTabSwitchDetection:  true,
		EnableWindowBlurDetection: true,
	}
}

// State is a snapshot of the monitor's compliance state.
type State struct {
	IsCompliant           bool `json:"is_compliant"`
	GracePeriodActive     bool `json:"grace_period_active"`
	RemainingGraceSeconds int  `json:"remaining_grace_seconds"`
	ViolationCount        int  `json:"violation_count"`
}
