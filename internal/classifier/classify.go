package classifier

import (
	"math"

	"github.com/abhisek/vigil/internal/geometry"
	"github.com/abhisek/vigil/internal/landmark"
)

// frameCenter is the center of the normalized coordinate space.
var frameCenter = geometry.Point{X: 0.5, Y: 0.5}

// ClassifyFrame evaluates every rule against one frame and returns the raw
// candidate events. It is a pure function of frame and config: no state,
// no side effects. Faces with missing landmarks are skipped per rule
// rather than failing the frame.
func ClassifyFrame(frame *landmark.Frame, cfg Config) []Event {
	if frame == nil || frame.FaceCount() == 0 {
		return []Event{{Kind: KindNoFace, Confidence: 1.0, FaceIndex: -1}}
	}

	var events []Event

	// Presence of extra humans is meaningful on its own, so this rule
	// fires on the raw detection count before any tracker stabilization.
	if n := frame.FaceCount(); n > 1 {
		events = append(events, Event{
			Kind:       KindMultipleFaces,
			Confidence: 1.0,
			FaceIndex:  -1,
			Detail:     map[string]any{"count": n},
		})
	}

	for i, face := range frame.Faces {
		if ev, ok := classifyMouth(face, i, cfg); ok {
			events = append(events, ev)
		}
		if ev, ok := classifyGaze(face, i, cfg); ok {
			events = append(events, ev)
		}
		events = append(events, classifyHeadPose(face, i, cfg)...)
	}

	events = append(events, classifyObjects(frame.Objects, cfg)...)
	return events
}

// classifyHeadPose flags faces whose center deviates from the frame center
// beyond the turn/tilt thresholds. The axes are independent: a face in a
// frame corner reports both head_turned and head_tilted.
func classifyHeadPose(face landmark.Face, faceIndex int, cfg Config) []Event {
	center := face.Center()
	if center == (geometry.Point{}) {
		return nil
	}

	// Normalized so a face at the frame edge reports deviation 1.
	xDev := math.Abs(center.X-frameCenter.X) * 2
	yDev := math.Abs(center.Y-frameCenter.Y) * 2

	var events []Event
	if xDev > cfg.HeadTurnThreshold {
		direction := "left"
		if center.X > frameCenter.X {
			direction = "right"
		}
		events = append(events, Event{
			Kind:       KindHeadTurned,
			Confidence: geometry.Clamp(xDev*2, 0, 1),
			FaceIndex:  faceIndex,
			Detail:     map[string]any{"direction": direction, "deviation": xDev},
		})
	}
	if yDev > cfg.HeadTiltThreshold {
		direction := "up"
		if center.Y > frameCenter.Y {
			direction = "down"
		}
		events = append(events, Event{
			Kind:       KindHeadTilted,
			Confidence: geometry.Clamp(yDev*2, 0, 1),
			FaceIndex:  faceIndex,
			Detail:     map[string]any{"direction": direction, "deviation": yDev},
		})
	}
	return events
}

// classifyObjects flags configured device labels above the confidence
// floor. One event per matching detection; the throttle collapses repeats.
func classifyObjects(objects []landmark.Object, cfg Config) []Event {
	if len(objects) == 0 || len(cfg.DeviceLabels) == 0 {
		return nil
	}

	labels := cfg.deviceLabelSet()
	var events []Event
	for _, obj := range objects {
		if _, ok := labels[obj.Label]; !ok {
			continue
		}
		if obj.Confidence < cfg.DeviceConfidence {
			continue
		}
		events = append(events, Event{
			Kind:       KindDeviceDetected,
			Confidence: geometry.Clamp(obj.Confidence, 0, 1),
			FaceIndex:  -1,
			Detail:     map[string]any{"label": obj.Label},
		})
	}
	return events
}
