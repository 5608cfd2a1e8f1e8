package classifier

import (
	"github.com/abhisek/vigil/internal/geometry"
	"github.com/abhisek/vigil/internal/landmark"
)

// MouthOpenRatio computes the vertical inner-lip separation normalized by
// mouth width. ok is false when the mouth landmarks are missing or the
// mouth width is degenerate.
func MouthOpenRatio(face landmark.Face) (float64, bool) {
	upper, ok := face.PointAt(landmark.UpperLipBottom)
	if !ok {
		return 0, false
	}
	lower, ok := face.PointAt(landmark.LowerLipTop)
	if !ok {
		return 0, false
	}
	left, ok := face.PointAt(landmark.MouthLeft)
	if !ok {
		return 0, false
	}
	right, ok := face.PointAt(landmark.MouthRight)
	if !ok {
		return 0, false
	}

	width := geometry.Distance(left, right)
	if width <= 0 {
		return 0, false
	}
	return geometry.Distance(upper, lower) / width, true
}

// classifyMouth applies the mouth-open rule to one face.
func classifyMouth(face landmark.Face, faceIndex int, cfg Config) (Event, bool) {
	ratio, ok := MouthOpenRatio(face)
	if !ok || ratio <= cfg.MouthOpenThreshold {
		return Event{}, false
	}

	return Event{
		Kind:       KindMouthOpen,
		Confidence: excessConfidence(ratio, cfg.MouthOpenThreshold),
		FaceIndex:  faceIndex,
		Detail: map[string]any{
			"ratio": ratio,
		},
	}, true
}
