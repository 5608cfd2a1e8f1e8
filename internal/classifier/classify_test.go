package classifier

import (
	"math"
	"testing"

	"github.com/abhisek/vigil/internal/geometry"
	"github.com/abhisek/vigil/internal/landmark"
)

const meshSize = 468

// makeFace builds a synthetic face centered at (cx, cy) with the given
// normalized size. Every landmark starts at the center; tests move the
// subsets they exercise.
func makeFace(cx, cy, size float64) landmark.Face {
	points := make([]geometry.Point, meshSize)
	for i := range points {
		points[i] = geometry.Point{X: cx, Y: cy}
	}
	half := size / 2
	return landmark.Face{
		Points: points,
		Box: geometry.Box{
			Min: geometry.Point{X: cx - half, Y: cy - half},
			Max: geometry.Point{X: cx + half, Y: cy + half},
		},
		Score: 0.9,
	}
}

func setMouth(face *landmark.Face, opening, width float64) {
	cx := face.Box.Center().X
	cy := face.Box.Center().Y
	face.Points[landmark.UpperLipBottom] = geometry.Point{X: cx, Y: cy - opening/2}
	face.Points[landmark.LowerLipTop] = geometry.Point{X: cx, Y: cy + opening/2}
	face.Points[landmark.MouthLeft] = geometry.Point{X: cx - width/2, Y: cy}
	face.Points[landmark.MouthRight] = geometry.Point{X: cx + width/2, Y: cy}
}

func setGaze(face *landmark.Face, dx, dy float64) {
	nose := face.Box.Center()
	face.Points[landmark.NoseTip] = nose
	eye := geometry.Point{X: nose.X + dx, Y: nose.Y + dy}
	for _, i := range landmark.LeftEye {
		face.Points[i] = eye
	}
	for _, i := range landmark.RightEye {
		face.Points[i] = eye
	}
}

func eventsOfKind(events []Event, kind Kind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestClassifyFrame_NoFace(t *testing.T) {
	events := ClassifyFrame(&landmark.Frame{}, DefaultConfig())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != KindNoFace {
		t.Errorf("got kind %q, want %q", events[0].Kind, KindNoFace)
	}
	if events[0].Confidence != 1.0 {
		t.Errorf("got confidence %f, want 1.0", events[0].Confidence)
	}
}

func TestClassifyFrame_NilFrame(t *testing.T) {
	events := ClassifyFrame(nil, DefaultConfig())
	if len(events) != 1 || events[0].Kind != KindNoFace {
		t.Fatalf("nil frame should classify as no_face, got %+v", events)
	}
}

func TestClassifyFrame_MultipleFaces(t *testing.T) {
	frame := &landmark.Frame{
		Faces: []landmark.Face{makeFace(0.3, 0.5, 0.2), makeFace(0.7, 0.5, 0.2)},
	}
	events := eventsOfKind(ClassifyFrame(frame, DefaultConfig()), KindMultipleFaces)
	if len(events) != 1 {
		t.Fatalf("got %d multiple_faces events, want 1", len(events))
	}
	if events[0].Confidence != 1.0 {
		t.Errorf("got confidence %f, want 1.0", events[0].Confidence)
	}
	if count, _ := events[0].Detail["count"].(int); count != 2 {
		t.Errorf("got count %v, want 2", events[0].Detail["count"])
	}
}

func TestClassifyMouth_OpenPastThreshold(t *testing.T) {
	cfg := DefaultConfig()
	face := makeFace(0.5, 0.5, 0.3)
	// Ratio = 2x threshold, so confidence saturates at 1.0.
	setMouth(&face, 2*cfg.MouthOpenThreshold*0.2, 0.2)

	ev, ok := classifyMouth(face, 0, cfg)
	if !ok {
		t.Fatal("expected mouth_open event")
	}
	if math.Abs(ev.Confidence-1.0) > 1e-9 {
		t.Errorf("got confidence %f, want 1.0", ev.Confidence)
	}
}

func TestClassifyMouth_Closed(t *testing.T) {
	cfg := DefaultConfig()
	face := makeFace(0.5, 0.5, 0.3)
	setMouth(&face, 0, 0.2)
	if _, ok := classifyMouth(face, 0, cfg); ok {
		t.Error("closed mouth should not emit an event")
	}
}

func TestClassifyMouth_ConfidenceScalesLinearly(t *testing.T) {
	cfg := DefaultConfig()
	face := makeFace(0.5, 0.5, 0.3)
	// Ratio = 1.5x threshold → confidence 0.5.
	setMouth(&face, 1.5*cfg.MouthOpenThreshold*0.2, 0.2)

	ev, ok := classifyMouth(face, 0, cfg)
	if !ok {
		t.Fatal("expected mouth_open event")
	}
	if math.Abs(ev.Confidence-0.5) > 1e-9 {
		t.Errorf("got confidence %f, want 0.5", ev.Confidence)
	}
}

func TestClassifyGaze_Centered(t *testing.T) {
	face := makeFace(0.5, 0.5, 0.3)
	setGaze(&face, 0, 0)
	if _, ok := classifyGaze(face, 0, DefaultConfig()); ok {
		t.Error("centered gaze should not emit an event")
	}
}

func TestClassifyGaze_DeviationRight(t *testing.T) {
	cfg := DefaultConfig()
	face := makeFace(0.5, 0.5, 0.3)
	// Offset = 0.8 * half face size → gaze magnitude 0.8, past the 0.4
	// threshold, confidence (0.8-0.4)/0.4 = 1.0.
	setGaze(&face, 0.8*0.15, 0)

	ev, ok := classifyGaze(face, 0, cfg)
	if !ok {
		t.Fatal("expected gaze_deviation event")
	}
	if dir, _ := ev.Detail["direction"].(string); dir != "right" {
		t.Errorf("got direction %q, want right", dir)
	}
	if math.Abs(ev.Confidence-1.0) > 1e-9 {
		t.Errorf("got confidence %f, want 1.0", ev.Confidence)
	}
}

func TestClassifyGaze_DirectionUp(t *testing.T) {
	face := makeFace(0.5, 0.5, 0.3)
	setGaze(&face, 0, -0.8*0.15)
	ev, ok := classifyGaze(face, 0, DefaultConfig())
	if !ok {
		t.Fatal("expected gaze_deviation event")
	}
	if dir, _ := ev.Detail["direction"].(string); dir != "up" {
		t.Errorf("got direction %q, want up", dir)
	}
}

func TestClassifyFrame_MissingLandmarksSkipped(t *testing.T) {
	// A face with a truncated landmark set must not panic and must not
	// produce per-face events.
	face := landmark.Face{
		Points: []geometry.Point{{X: 0.5, Y: 0.5}},
		Box: geometry.Box{
			Min: geometry.Point{X: 0.4, Y: 0.4},
			Max: geometry.Point{X: 0.6, Y: 0.6},
		},
	}
	events := ClassifyFrame(&landmark.Frame{Faces: []landmark.Face{face}}, DefaultConfig())
	for _, e := range events {
		if e.Kind == KindMouthOpen || e.Kind == KindGazeDeviation {
			t.Errorf("unexpected %q event from truncated face", e.Kind)
		}
	}
}

func TestClassifyObjects_Device(t *testing.T) {
	frame := &landmark.Frame{
		Faces: []landmark.Face{makeFace(0.5, 0.5, 0.3)},
		Objects: []landmark.Object{
			{Label: "cell phone", Confidence: 0.8},
			{Label: "coffee mug", Confidence: 0.9},
			{Label: "laptop", Confidence: 0.1}, // below floor
		},
	}
	events := eventsOfKind(ClassifyFrame(frame, DefaultConfig()), KindDeviceDetected)
	if len(events) != 1 {
		t.Fatalf("got %d device events, want 1", len(events))
	}
	if label, _ := events[0].Detail["label"].(string); label != "cell phone" {
		t.Errorf("got label %q, want cell phone", label)
	}
}

func TestClassifyHeadPose_TurnedRight(t *testing.T) {
	face := makeFace(0.8, 0.5, 0.2)
	events := classifyHeadPose(face, 0, DefaultConfig())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != KindHeadTurned {
		t.Errorf("got kind %q, want head_turned", events[0].Kind)
	}
	if dir, _ := events[0].Detail["direction"].(string); dir != "right" {
		t.Errorf("got direction %q, want right", dir)
	}
}

func TestClassifyHeadPose_TiltedDown(t *testing.T) {
	face := makeFace(0.5, 0.85, 0.2)
	events := classifyHeadPose(face, 0, DefaultConfig())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != KindHeadTilted {
		t.Errorf("got kind %q, want head_tilted", events[0].Kind)
	}
	if dir, _ := events[0].Detail["direction"].(string); dir != "down" {
		t.Errorf("got direction %q, want down", dir)
	}
}

func TestClassifyHeadPose_CornerReportsBothAxes(t *testing.T) {
	// Upper-left corner: turned left and tilted up at the same time.
	face := makeFace(0.1, 0.1, 0.15)
	events := classifyHeadPose(face, 0, DefaultConfig())
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != KindHeadTurned || events[1].Kind != KindHeadTilted {
		t.Errorf("got kinds %q, %q; want head_turned, head_tilted", events[0].Kind, events[1].Kind)
	}
	if dir, _ := events[0].Detail["direction"].(string); dir != "left" {
		t.Errorf("got turn direction %q, want left", dir)
	}
	if dir, _ := events[1].Detail["direction"].(string); dir != "up" {
		t.Errorf("got tilt direction %q, want up", dir)
	}
}

func TestClassifyHeadPose_Centered(t *testing.T) {
	face := makeFace(0.5, 0.5, 0.2)
	if events := classifyHeadPose(face, 0, DefaultConfig()); len(events) != 0 {
		t.Errorf("centered face emitted %d head pose events, want 0", len(events))
	}
}
