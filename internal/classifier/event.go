// Package classifier turns a single landmark frame into zero or more raw
// candidate events by evaluating configurable per-frame rules. Rules are
// pure functions of the frame and config; stabilization, attribution and
// throttling happen downstream.
package classifier

// Kind identifies a candidate event type.
type Kind string

const (
	KindNoFace         Kind = "no_face"
	KindMultipleFaces  Kind = "multiple_faces"
	KindGazeDeviation  Kind = "gaze_deviation"
	KindMouthOpen      Kind = "mouth_open"
	KindDeviceDetected Kind = "device_detected"
	KindHeadTurned     Kind = "head_turned"
	KindHeadTilted     Kind = "head_tilted"
)

// Event is an ephemeral candidate emitted by the classifier. It becomes a
// durable violation only if it survives the throttle layer.
type Event struct {
	Kind       Kind
	Confidence float64

	// FaceIndex is the frame-local index of the face that produced the
	// event, or -1 for frame-level events (no_face, multiple_faces,
	// device_detected).
	FaceIndex int

	// SourceFaceID is the stable tracked-face identity, filled in after
	// tracker attribution. Empty for frame-level events.
	SourceFaceID string

	// Detail carries rule-specific evidence (direction, ratio, count).
	Detail map[string]any
}
