// Package violation converts raw candidate events into durable,
// rate-limited violation records. A continuously-true condition produces
// one violation per cooldown window instead of dozens per second.
package violation

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades a violation.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Type identifies the violation category. Visual types mirror the
// classifier's candidate kinds; the compliance monitor contributes the
// browser-level types.
type Type string

const (
	TypeNoFace           Type = "no_face"
	TypeMultipleFaces    Type = "multiple_faces"
	TypeGazeDeviation    Type = "gaze_deviation"
	TypeMouthOpen        Type = "mouth_open"
	TypeDeviceDetected   Type = "device_detected"
	TypeHeadTurned       Type = "head_turned"
	TypeHeadTilted       Type = "head_tilted"
	TypeFullscreenExit   Type = "fullscreen_exit"
	TypeKeyCombination   Type = "key_combination"
	TypeVisibilityChange Type = "visibility_change"
	TypeWindowBlur       Type = "window_blur"
)

// Violation is a durable integrity record. Never mutated after creation.
type Violation struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	Severity   Severity       `json:"severity"`
	Confidence float64        `json:"confidence"`
	Message    string         `json:"message"`
	Timestamp  time.Time      `json:"timestamp"`
	Evidence   map[string]any `json:"evidence,omitempty"`
}

// Listener receives violations as they are emitted. Invocation is
// synchronous and rate-bounded by the throttle's cooldowns, so listeners
// need no queuing.
type Listener func(Violation)

// New builds a violation record with a fresh ID.
func New(vtype Type, severity Severity, confidence float64, message string, ts time.Time, evidence map[string]any) Violation {
	return Violation{
		ID:         uuid.NewString(),
		Type:       vtype,
		Severity:   severity,
		Confidence: confidence,
		Message:    message,
		Timestamp:  ts,
		Evidence:   evidence,
	}
}
