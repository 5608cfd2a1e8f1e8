package classifier

import (
	"math"

	"github.com/abhisek/vigil/internal/geometry"
	"github.com/abhisek/vigil/internal/landmark"
)

// GazeVector estimates a 2-D gaze direction for the face: the offset of
// the combined eye center from the nose tip, normalized by half the face
// size so each axis lands roughly in [-1,1]. ok is false when the eye or
// nose landmarks are missing.
func GazeVector(face landmark.Face) (geometry.Point, bool) {
	left, ok := face.RegionCentroid(landmark.LeftEye)
	if !ok {
		return geometry.Point{}, false
	}
	right, ok := face.RegionCentroid(landmark.RightEye)
	if !ok {
		return geometry.Point{}, false
	}
	nose, ok := face.PointAt(landmark.NoseTip)
	if !ok {
		return geometry.Point{}, false
	}

	eyeCenter := geometry.Midpoint(left, right)
	half := face.Size() / 2
	if half <= 0 {
		return geometry.Point{}, false
	}

	v := eyeCenter.Sub(nose).Scale(1 / half)
	v.X = geometry.Clamp(v.X, -1, 1)
	v.Y = geometry.Clamp(v.Y, -1, 1)
	return v, true
}

// gazeDirection labels the dominant axis of the gaze vector.
func gazeDirection(v geometry.Point) string {
	if math.Abs(v.X) >= math.Abs(v.Y) {
		if v.X > 0 {
			return "right"
		}
		return "left"
	}
	if v.Y > 0 {
		return "down"
	}
	return "up"
}

// classifyGaze applies the gaze-deviation rule to one face.
func classifyGaze(face landmark.Face, faceIndex int, cfg Config) (Event, bool) {
	v, ok := GazeVector(face)
	if !ok {
		return Event{}, false
	}

	mag := math.Max(math.Abs(v.X), math.Abs(v.Y))
	if mag <= cfg.GazeThreshold {
		return Event{}, false
	}

	return Event{
		Kind:       KindGazeDeviation,
		Confidence: excessConfidence(mag, cfg.GazeThreshold),
		FaceIndex:  faceIndex,
		Detail: map[string]any{
			"direction": gazeDirection(v),
			"gaze_x":    v.X,
			"gaze_y":    v.Y,
		},
	}, true
}

// excessConfidence scales a measurement into [0,1] by how far it sits past
// its threshold: at the threshold confidence is 0, at twice the threshold
// it saturates at 1.
func excessConfidence(value, threshold float64) float64 {
	if threshold <= 0 {
		return 1
	}
	return geometry.Clamp((value-threshold)/threshold, 0, 1)
}
