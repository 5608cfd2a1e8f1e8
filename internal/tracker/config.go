package tracker

// Policy selects how the primary face is chosen among tracked faces.
type Policy string

const (
	// PolicyMostStable prefers the face with the highest stability score.
	PolicyMostStable Policy = "most_stable"
	// PolicyLargest prefers the face with the largest bounding box.
	PolicyLargest Policy = "largest"
	// PolicyMostCentral prefers the face closest to the frame center.
	PolicyMostCentral Policy = "most_central"
)

// Default tracking parameters.
const (
	DefaultMinFaceSize     = 0.12
	DefaultMaxFaceSize     = 0.7
	DefaultMatchDistance   = 0.15
	DefaultStabilityAlpha  = 0.3
	DefaultStabilityFrames = 5
	DefaultEvictionHorizon = 10
)

// Config holds the tracker's tuning parameters.
type Config struct {
	// MinFaceSize and MaxFaceSize gate detections by normalized size;
	// anything outside the band is treated as a false positive.
	MinFaceSize float64
	MaxFaceSize float64

	// MatchDistance is the maximum center distance for associating a
	// detection with an existing tracked face.
	MatchDistance float64

	// StabilityAlpha is the EMA factor moving stability toward 1 on a
	// match and toward 0 on a miss.
	StabilityAlpha float64

	// StabilityFrames is the number of consecutive frames a challenger
	// must outrank the current primary before the primary switches.
	StabilityFrames int

	// EvictionHorizon is the framesSinceDetection count beyond which a
	// tracked face is dropped.
	EvictionHorizon int

	// PrimarySelection is the primary election policy.
	PrimarySelection Policy
}

// DefaultConfig returns the default tracker configuration.
func DefaultConfig() Config {
	return Config{
		MinFaceSize:      DefaultMinFaceSize,
		MaxFaceSize:      DefaultMaxFaceSize,
		MatchDistance:    DefaultMatchDistance,
		StabilityAlpha:   DefaultStabilityAlpha,
		StabilityFrames:  DefaultStabilityFrames,
		EvictionHorizon:  DefaultEvictionHorizon,
		PrimarySelection: PolicyMostStable,
	}
}
