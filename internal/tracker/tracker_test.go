package tracker

import (
	"fmt"
	"testing"

	"github.com/abhisek/vigil/internal/geometry"
	"github.com/abhisek/vigil/internal/landmark"
)

// detection builds a detection centered at (cx, cy) with the given size.
func detection(cx, cy, size float64) landmark.Face {
	half := size / 2
	return landmark.Face{
		Box: geometry.Box{
			Min: geometry.Point{X: cx - half, Y: cy - half},
			Max: geometry.Point{X: cx + half, Y: cy + half},
		},
		Score: 0.9,
	}
}

// newTestTracker returns a tracker with deterministic sequential IDs.
func newTestTracker(cfg Config) *Tracker {
	t := New(cfg)
	n := 0
	t.newID = func() string {
		n++
		return fmt.Sprintf("face-%d", n)
	}
	return t
}

func countPrimaries(faces []*Face) int {
	n := 0
	for _, f := range faces {
		if f.Primary {
			n++
		}
	}
	return n
}

func TestUpdate_SpawnsAndMatches(t *testing.T) {
	tr := newTestTracker(DefaultConfig())

	res := tr.Update([]landmark.Face{detection(0.5, 0.5, 0.2)})
	if len(res.Faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(res.Faces))
	}
	id := res.Faces[0].ID

	// Slightly moved detection matches the same identity.
	res = tr.Update([]landmark.Face{detection(0.52, 0.5, 0.2)})
	if len(res.Faces) != 1 {
		t.Fatalf("got %d faces after second frame, want 1", len(res.Faces))
	}
	if res.Faces[0].ID != id {
		t.Errorf("identity changed across frames: %s -> %s", id, res.Faces[0].ID)
	}
	if res.Assignments[0] != id {
		t.Errorf("assignment %q, want %q", res.Assignments[0], id)
	}
}

func TestUpdate_SizeGate(t *testing.T) {
	tr := newTestTracker(DefaultConfig())

	res := tr.Update([]landmark.Face{
		detection(0.5, 0.5, 0.05), // too small
		detection(0.5, 0.5, 0.9),  // too large
	})
	if len(res.Faces) != 0 {
		t.Errorf("gated detections spawned %d faces, want 0", len(res.Faces))
	}
	if len(res.Assignments) != 0 {
		t.Errorf("gated detections were assigned: %v", res.Assignments)
	}
}

func TestUpdate_StabilityGrowsAndDecays(t *testing.T) {
	tr := newTestTracker(DefaultConfig())

	var stability float64
	for i := 0; i < 10; i++ {
		res := tr.Update([]landmark.Face{detection(0.5, 0.5, 0.2)})
		if res.Faces[0].Stability < stability {
			t.Fatalf("stability decreased while matched: %f -> %f", stability, res.Faces[0].Stability)
		}
		stability = res.Faces[0].Stability
	}
	if stability < 0.9 {
		t.Errorf("stability after 10 matches = %f, want >= 0.9", stability)
	}

	// Missed frames decay stability toward 0.
	res := tr.Update(nil)
	if len(res.Faces) != 1 {
		t.Fatalf("face evicted too early")
	}
	if res.Faces[0].Stability >= stability {
		t.Errorf("stability did not decay on miss: %f", res.Faces[0].Stability)
	}
	if res.Faces[0].FramesSinceDetection != 1 {
		t.Errorf("framesSinceDetection = %d, want 1", res.Faces[0].FramesSinceDetection)
	}
}

func TestUpdate_Eviction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EvictionHorizon = 3
	tr := newTestTracker(cfg)

	tr.Update([]landmark.Face{detection(0.5, 0.5, 0.2)})
	for i := 0; i < 3; i++ {
		if res := tr.Update(nil); len(res.Faces) != 1 {
			t.Fatalf("evicted after %d misses, horizon is 3", i+1)
		}
	}
	if res := tr.Update(nil); len(res.Faces) != 0 {
		t.Errorf("face not evicted past horizon: %d faces", len(res.Faces))
	}
}

func TestUpdate_TwoStableFaces(t *testing.T) {
	tr := newTestTracker(DefaultConfig())

	var res Result
	for i := 0; i < 30; i++ {
		res = tr.Update([]landmark.Face{
			detection(0.3, 0.5, 0.2),
			detection(0.7, 0.5, 0.18),
		})
		if got := countPrimaries(res.Faces); got > 1 {
			t.Fatalf("frame %d: %d primaries, want at most 1", i, got)
		}
	}

	if len(res.Faces) != 2 {
		t.Fatalf("got %d tracked faces, want 2", len(res.Faces))
	}
	if countPrimaries(res.Faces) != 1 {
		t.Errorf("got %d primaries, want exactly 1", countPrimaries(res.Faces))
	}
	if res.PrimaryID == "" {
		t.Error("no primary elected")
	}
	if res.DetectionQuality < 0.9 {
		t.Errorf("detection quality %f, want >= 0.9 after 30 stable frames", res.DetectionQuality)
	}
}

func TestUpdate_PrimaryUniquenessUnderChurn(t *testing.T) {
	tr := newTestTracker(DefaultConfig())

	// Faces appear, disappear and move; the invariant must hold after
	// every tick.
	frames := [][]landmark.Face{
		{detection(0.3, 0.5, 0.2)},
		{detection(0.3, 0.5, 0.2), detection(0.7, 0.5, 0.25)},
		{detection(0.7, 0.5, 0.25)},
		nil,
		{detection(0.5, 0.5, 0.3), detection(0.2, 0.2, 0.15), detection(0.8, 0.8, 0.15)},
		{detection(0.5, 0.52, 0.3)},
		nil,
		nil,
	}
	for i, frame := range frames {
		res := tr.Update(frame)
		if got := countPrimaries(res.Faces); got > 1 {
			t.Fatalf("frame %d: %d primaries", i, got)
		}
	}
}

func TestUpdate_HysteresisHoldsPrimary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StabilityFrames = 3
	tr := newTestTracker(cfg)

	// Establish A as primary.
	a := detection(0.3, 0.5, 0.2)
	b := detection(0.7, 0.5, 0.2)
	res := tr.Update([]landmark.Face{a})
	primaryID := res.PrimaryID
	if primaryID == "" {
		t.Fatal("no primary after first frame")
	}

	// B appears; both now get matched every frame so their stabilities
	// stay near-identical (B strictly lower, having joined later). The
	// primary must not flip.
	for i := 0; i < 5; i++ {
		res = tr.Update([]landmark.Face{a, b})
		if res.PrimaryID != primaryID {
			t.Fatalf("frame %d: primary flipped from %s to %s", i, primaryID, res.PrimaryID)
		}
	}
}

func TestUpdate_SustainedChallengerTakesOver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StabilityFrames = 3
	tr := newTestTracker(cfg)

	a := detection(0.3, 0.5, 0.2)
	b := detection(0.7, 0.5, 0.2)

	// A alone, then both, so A is primary with higher stability.
	tr.Update([]landmark.Face{a})
	res := tr.Update([]landmark.Face{a, b})
	primaryID := res.PrimaryID

	// A disappears; B keeps matching and overtakes A's decaying
	// stability. After StabilityFrames consecutive frames of strictly
	// higher rank, B becomes primary.
	var flipped bool
	for i := 0; i < 8; i++ {
		res = tr.Update([]landmark.Face{b})
		if countPrimaries(res.Faces) > 1 {
			t.Fatalf("frame %d: multiple primaries", i)
		}
		if res.PrimaryID != "" && res.PrimaryID != primaryID {
			flipped = true
			break
		}
	}
	if !flipped {
		t.Error("sustained challenger never became primary")
	}
}

func TestUpdate_PrimaryReselectedAfterEviction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EvictionHorizon = 2
	tr := newTestTracker(cfg)

	a := detection(0.3, 0.5, 0.2)
	b := detection(0.7, 0.5, 0.2)
	tr.Update([]landmark.Face{a, b})
	res := tr.Update([]landmark.Face{a, b})
	first := res.PrimaryID

	// Primary's face vanishes; keep the other face present.
	var surviving landmark.Face
	if res.Faces[0].ID == first {
		surviving = b
	} else {
		surviving = a
	}
	for i := 0; i < 4; i++ {
		res = tr.Update([]landmark.Face{surviving})
	}

	if len(res.Faces) != 1 {
		t.Fatalf("got %d faces, want 1 after eviction", len(res.Faces))
	}
	if res.PrimaryID == "" {
		t.Error("no primary reselected after eviction")
	}
	if countPrimaries(res.Faces) != 1 {
		t.Errorf("got %d primaries, want 1", countPrimaries(res.Faces))
	}
}

func TestUpdate_LargestPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrimarySelection = PolicyLargest
	tr := newTestTracker(cfg)

	res := tr.Update([]landmark.Face{
		detection(0.3, 0.5, 0.15),
		detection(0.7, 0.5, 0.3),
	})
	var primary *Face
	for _, f := range res.Faces {
		if f.Primary {
			primary = f
		}
	}
	if primary == nil {
		t.Fatal("no primary elected")
	}
	if primary.Size() < 0.29 {
		t.Errorf("largest policy picked size %f face", primary.Size())
	}
}

func TestUpdate_MostCentralPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrimarySelection = PolicyMostCentral
	tr := newTestTracker(cfg)

	res := tr.Update([]landmark.Face{
		detection(0.15, 0.2, 0.2),
		detection(0.5, 0.5, 0.2),
	})
	var primary *Face
	for _, f := range res.Faces {
		if f.Primary {
			primary = f
		}
	}
	if primary == nil {
		t.Fatal("no primary elected")
	}
	center := primary.Box.Center()
	if center.X != 0.5 || center.Y != 0.5 {
		t.Errorf("most_central policy picked face at (%f,%f)", center.X, center.Y)
	}
}
