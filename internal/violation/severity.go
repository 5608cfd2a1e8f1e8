package violation

import (
	"fmt"

	"github.com/abhisek/vigil/internal/classifier"
)

// severityByKind is the static candidate-kind to severity lookup.
// no_face escalates to high only after the dwell time; see Throttle.
var severityByKind = map[classifier.Kind]Severity{
	classifier.KindNoFace:         SeverityMedium,
	classifier.KindMultipleFaces:  SeverityHigh,
	classifier.KindGazeDeviation:  SeverityMedium,
	classifier.KindMouthOpen:      SeverityMedium,
	classifier.KindDeviceDetected: SeverityCritical,
	classifier.KindHeadTurned:     SeverityMedium,
	classifier.KindHeadTilted:     SeverityMedium,
}

// severityFor maps a candidate kind to its severity. sustained marks a
// no_face condition that has been continuously active past the dwell time.
func severityFor(kind classifier.Kind, sustained bool) Severity {
	if kind == classifier.KindNoFace && sustained {
		return SeverityHigh
	}
	if s, ok := severityByKind[kind]; ok {
		return s
	}
	return SeverityMedium
}

// messageFor renders the human-readable violation message for a kind.
func messageFor(ev classifier.Event) string {
	switch ev.Kind {
	case classifier.KindNoFace:
		return "No face detected in frame"
	case classifier.KindMultipleFaces:
		if count, ok := ev.Detail["count"].(int); ok {
			return fmt.Sprintf("Multiple people detected (%d faces)", count)
		}
		return "Multiple people detected"
	case classifier.KindGazeDeviation:
		if dir, ok := ev.Detail["direction"].(string); ok {
			return "Gaze direction off screen: " + dir
		}
		return "Gaze direction off screen"
	case classifier.KindMouthOpen:
		return "Speaking or mouth movement detected"
	case classifier.KindDeviceDetected:
		if label, ok := ev.Detail["label"].(string); ok {
			return "Unauthorized device detected: " + label
		}
		return "Unauthorized device detected"
	case classifier.KindHeadTurned:
		if dir, ok := ev.Detail["direction"].(string); ok {
			return "Head turned " + dir
		}
		return "Head turned away from screen"
	case classifier.KindHeadTilted:
		if dir, ok := ev.Detail["direction"].(string); ok {
			return "Head tilted " + dir
		}
		return "Head tilted away from screen"
	default:
		return string(ev.Kind)
	}
}
