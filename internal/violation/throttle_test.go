package violation

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/vigil/internal/classifier"
)

// manualClock is a settable clock for driving the throttle in tests.
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time          { return c.t }
func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRecord_CooldownIdempotence(t *testing.T) {
	clock := newManualClock()
	th := NewThrottleWithClock(Config{Cooldown: 3 * time.Second}, clock.Now)

	// The same candidate every 100ms for 10 seconds with a 3s cooldown
	// yields exactly 4 violations: t=0, 3000, 6000, 9000.
	emitted := 0
	for i := 0; i < 100; i++ {
		if v := th.Record(classifier.Event{Kind: classifier.KindGazeDeviation, Confidence: 0.8}); v != nil {
			emitted++
		}
		clock.Advance(100 * time.Millisecond)
	}
	if emitted != 4 {
		t.Errorf("got %d violations, want 4", emitted)
	}
}

func TestRecord_NoCrossTypeSuppression(t *testing.T) {
	clock := newManualClock()
	th := NewThrottleWithClock(Config{Cooldown: 3 * time.Second}, clock.Now)

	v1 := th.Record(classifier.Event{Kind: classifier.KindGazeDeviation, Confidence: 0.6})
	v2 := th.Record(classifier.Event{Kind: classifier.KindMouthOpen, Confidence: 0.6})
	if v1 == nil || v2 == nil {
		t.Fatal("different kinds in the same tick must both emit")
	}
}

func TestRecord_PerFaceKeys(t *testing.T) {
	clock := newManualClock()
	th := NewThrottleWithClock(Config{Cooldown: 3 * time.Second}, clock.Now)

	v1 := th.Record(classifier.Event{Kind: classifier.KindGazeDeviation, SourceFaceID: "a", Confidence: 0.6})
	v2 := th.Record(classifier.Event{Kind: classifier.KindGazeDeviation, SourceFaceID: "b", Confidence: 0.6})
	if v1 == nil || v2 == nil {
		t.Fatal("same kind on different faces must throttle independently")
	}

	// Same face again within cooldown is suppressed.
	if v := th.Record(classifier.Event{Kind: classifier.KindGazeDeviation, SourceFaceID: "a", Confidence: 0.6}); v != nil {
		t.Error("repeat on same face within cooldown should be suppressed")
	}
}

func TestRecord_SeverityMapping(t *testing.T) {
	clock := newManualClock()
	th := NewThrottleWithClock(DefaultThrottleConfig(), clock.Now)

	cases := []struct {
		kind classifier.Kind
		want Severity
	}{
		{classifier.KindMultipleFaces, SeverityHigh},
		{classifier.KindGazeDeviation, SeverityMedium},
		{classifier.KindMouthOpen, SeverityMedium},
		{classifier.KindDeviceDetected, SeverityCritical},
		{classifier.KindHeadTurned, SeverityMedium},
		{classifier.KindHeadTilted, SeverityMedium},
	}
	for _, tc := range cases {
		v := th.Record(classifier.Event{Kind: tc.kind, Confidence: 1})
		if v == nil {
			t.Fatalf("%s: no violation emitted", tc.kind)
		}
		if v.Severity != tc.want {
			t.Errorf("%s: got severity %q, want %q", tc.kind, v.Severity, tc.want)
		}
	}
}

func TestRecord_NoFaceDwellEscalation(t *testing.T) {
	clock := newManualClock()
	th := NewThrottleWithClock(Config{Cooldown: time.Second, NoFaceDwell: 3 * time.Second}, clock.Now)

	ev := classifier.Event{Kind: classifier.KindNoFace, Confidence: 1}

	v := th.Record(ev)
	if v == nil {
		t.Fatal("first no_face should emit")
	}
	if v.Severity != SeverityMedium {
		t.Errorf("fresh no_face severity %q, want medium", v.Severity)
	}

	// Condition persists past the dwell time.
	clock.Advance(4 * time.Second)
	v = th.Record(ev)
	if v == nil {
		t.Fatal("sustained no_face should emit after cooldown")
	}
	if v.Severity != SeverityHigh {
		t.Errorf("sustained no_face severity %q, want high", v.Severity)
	}

	// A frame with a face resets the dwell.
	th.ResetNoFace()
	clock.Advance(2 * time.Second)
	v = th.Record(ev)
	if v == nil {
		t.Fatal("no_face after reset should emit")
	}
	if v.Severity != SeverityMedium {
		t.Errorf("post-reset no_face severity %q, want medium", v.Severity)
	}
}

func TestRecord_ConfidenceSmoothing(t *testing.T) {
	clock := newManualClock()
	th := NewThrottleWithClock(Config{Cooldown: time.Millisecond, SmoothingWindow: 3}, clock.Now)

	ev := func(c float64) classifier.Event {
		return classifier.Event{Kind: classifier.KindMouthOpen, Confidence: c}
	}

	th.Record(ev(0.2))
	clock.Advance(time.Millisecond)
	th.Record(ev(0.2))
	clock.Advance(time.Millisecond)

	// Spike to 1.0: smoothed over the window, not reported raw.
	v := th.Record(ev(1.0))
	if v == nil {
		t.Fatal("expected violation")
	}
	want := (0.2 + 0.2 + 1.0) / 3
	if diff := v.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got confidence %f, want %f", v.Confidence, want)
	}
	if raw, _ := v.Evidence["raw_confidence"].(float64); raw != 1.0 {
		t.Errorf("raw confidence %v, want 1.0", v.Evidence["raw_confidence"])
	}
}

func TestRecord_DropsIdleFaceWindows(t *testing.T) {
	clock := newManualClock()
	th := NewThrottleWithClock(Config{Cooldown: 3 * time.Second}, clock.Now)

	// A churn of one-off identities, each seen exactly once.
	for i := 0; i < 50; i++ {
		th.Record(classifier.Event{
			Kind:         classifier.KindGazeDeviation,
			SourceFaceID: fmt.Sprintf("face-%d", i),
			Confidence:   0.6,
		})
		clock.Advance(time.Second)
	}

	// Everything older than the cooldown is gone; only the keys touched
	// within the last 3s (plus the one recorded now) remain.
	th.Record(classifier.Event{Kind: classifier.KindMouthOpen, Confidence: 0.6})
	if got := len(th.confWindows); got > 4 {
		t.Errorf("%d confidence windows retained, want at most 4", got)
	}
	if got := len(th.lastEmit); got > 4 {
		t.Errorf("%d emit stamps retained, want at most 4", got)
	}
}

func TestLog_BoundedEvictsOldest(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Append(Violation{ID: fmt.Sprintf("v%d", i)})
	}
	if l.Len() != 3 {
		t.Fatalf("got %d entries, want 3", l.Len())
	}
	snap := l.Snapshot()
	if snap[0].ID != "v2" || snap[2].ID != "v4" {
		t.Errorf("eviction kept wrong entries: %s..%s", snap[0].ID, snap[2].ID)
	}
}

func TestLog_SnapshotIsCopy(t *testing.T) {
	l := NewLog(3)
	l.Append(Violation{ID: "a"})
	snap := l.Snapshot()
	snap[0].ID = "mutated"
	if l.Snapshot()[0].ID != "a" {
		t.Error("snapshot mutation leaked into the log")
	}
}
