// Package landmark defines the data model the detection pipeline consumes:
// timestamped frames of per-face landmark points plus optional object
// detections, as produced by an external landmark detector.
package landmark

import (
	"time"

	"github.com/abhisek/vigil/internal/geometry"
)

// Face is one detected face within a frame: a fixed-size ordered landmark
// set plus the detector's bounding geometry and score.
type Face struct {
	// Points is the ordered landmark set. Indexing follows the detector's
	// mesh topology; see regions.go for the index sets the classifier uses.
	Points []geometry.Point `json:"points"`

	// Box is the detector-reported bounding box in normalized coordinates.
	Box geometry.Box `json:"box"`

	// Score is the detector's confidence for this face in [0,1].
	Score float64 `json:"score"`
}

// Size returns the normalized face size used for gating, preferring the
// detector's box and falling back to the landmark extent.
func (f Face) Size() float64 {
	if s := f.Box.Size(); s > 0 {
		return s
	}
	return geometry.BoundingBox(f.Points).Size()
}

// Center returns the face center, preferring the detector's box.
func (f Face) Center() geometry.Point {
	if f.Box.Area() > 0 {
		return f.Box.Center()
	}
	return geometry.Centroid(f.Points)
}

// Object is a non-face object detection (phone, book, second screen).
// Produced by an optional object-detection capability; frames without it
// simply carry no objects.
type Object struct {
	Label      string       `json:"label"`
	Confidence float64      `json:"confidence"`
	Box        geometry.Box `json:"box"`
}

// Frame is one timestamped capture tick: zero or more faces and objects.
// Frames are ephemeral; the classifier consumes and discards them.
type Frame struct {
	Timestamp time.Time `json:"timestamp"`
	Faces     []Face    `json:"faces"`
	Objects   []Object  `json:"objects,omitempty"`
}

// FaceCount returns the number of detected faces.
func (f *Frame) FaceCount() int { return len(f.Faces) }
