package classifier

// Default rule thresholds. Tuned against the reference detector's
// normalized coordinate space; all are operator-adjustable via Config.
const (
	DefaultGazeThreshold      = 0.4
	DefaultMouthOpenThreshold = 0.05
	DefaultHeadTurnThreshold  = 0.3
	DefaultHeadTiltThreshold  = 0.25
	DefaultDeviceConfidence   = 0.25
)

// Config holds the injectable thresholds for every per-frame rule.
type Config struct {
	// GazeThreshold is the per-axis gaze-vector magnitude beyond which a
	// gaze_deviation event fires.
	GazeThreshold float64

	// MouthOpenThreshold is the inner-lip separation to mouth-width ratio
	// beyond which a mouth_open event fires.
	MouthOpenThreshold float64

	// HeadTurnThreshold and HeadTiltThreshold bound the normalized
	// deviation of the face center from the frame center per axis.
	HeadTurnThreshold float64
	HeadTiltThreshold float64

	// DeviceLabels lists object-detection labels treated as unauthorized
	// devices. Empty means the device rule is disabled.
	DeviceLabels []string

	// DeviceConfidence is the minimum object-detection confidence for a
	// device_detected event.
	DeviceConfidence float64
}

// DefaultConfig returns a Config with the default thresholds and the
// device label set of the reference deployment.
func DefaultConfig() Config {
	return Config{
		GazeThreshold:      DefaultGazeThreshold,
		MouthOpenThreshold: DefaultMouthOpenThreshold,
		HeadTurnThreshold:  DefaultHeadTurnThreshold,
		HeadTiltThreshold:  DefaultHeadTiltThreshold,
		DeviceLabels: []string{
			"cell phone", "phone", "smartphone", "laptop", "tablet",
			"book", "remote", "tv", "monitor", "calculator", "headphones", "earbuds",
		},
		DeviceConfidence: DefaultDeviceConfidence,
	}
}

// deviceLabelSet builds a lookup set from the configured labels.
func (c Config) deviceLabelSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.DeviceLabels))
	for _, l := range c.DeviceLabels {
		set[l] = struct{}{}
	}
	return set
}
