package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/vigil/internal/geometry"
	"github.com/abhisek/vigil/internal/landmark"
	"github.com/abhisek/vigil/internal/store"
	"github.com/abhisek/vigil/internal/violation"
)

const meshSize = 468

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

// fakeRepo records appended events in memory.
type fakeRepo struct {
	mu         sync.Mutex
	violations []store.ViolationEventData
	sessions   []store.SessionEventData
}

func (r *fakeRepo) AppendViolation(_ context.Context, data store.ViolationEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations = append(r.violations, data)
	return nil
}

func (r *fakeRepo) QueryViolations(context.Context, string, store.QueryOpts) ([]store.ViolationRecord, error) {
	return nil, nil
}

func (r *fakeRepo) CountViolationsBySeverity(context.Context, string) (map[string]int, error) {
	return nil, nil
}

func (r *fakeRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *fakeRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func (r *fakeRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (r *fakeRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (r *fakeRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (r *fakeRepo) violationCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.violations)
}

type manualClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *manualClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type capture struct {
	mu   sync.Mutex
	list []violation.Violation
}

func (c *capture) listen(v violation.Violation) {
	c.mu.Lock()
	c.list = append(c.list, v)
	c.mu.Unlock()
}

func (c *capture) snapshot() []violation.Violation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]violation.Violation(nil), c.list...)
}

func newTestSession(repo store.EventRepo, sink *capture, clock *manualClock) *Session {
	det := DetectorFunc(func(context.Context) (*landmark.Frame, error) {
		return nil, nil
	})
	var listener violation.Listener
	if sink != nil {
		listener = sink.listen
	}
	return newSession(DefaultConfig(), det, listener, repo, clock.now)
}

func TestProcess_NoFaceEmitsViolation(t *testing.T) {
	repo := &fakeRepo{}
	sink := &capture{}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(repo, sink, clock)
	defer s.Close()

	emitted := s.Process(&landmark.Frame{})

	if len(emitted) != 1 {
		t.Fatalf("got %d violations, want 1", len(emitted))
	}
	if emitted[0].Type != violation.TypeNoFace {
		t.Errorf("got type %q, want %q", emitted[0].Type, violation.TypeNoFace)
	}
	got := sink.snapshot()
	if len(got) != 1 || got[0].ID != emitted[0].ID {
		t.Errorf("listener did not receive the emitted violation")
	}
	if repo.violationCount() != 1 {
		t.Fatalf("got %d persisted violations, want 1", repo.violationCount())
	}
	repo.mu.Lock()
	data := repo.violations[0]
	repo.mu.Unlock()
	if data.SessionID != s.ID() {
		t.Errorf("persisted session id %q, want %q", data.SessionID, s.ID())
	}
	if data.Type != string(violation.TypeNoFace) {
		t.Errorf("persisted type %q, want %q", data.Type, violation.TypeNoFace)
	}
}

func TestProcess_CooldownSuppressesRepeat(t *testing.T) {
	repo := &fakeRepo{}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(repo, nil, clock)
	defer s.Close()

	if got := s.Process(&landmark.Frame{}); len(got) != 1 {
		t.Fatalf("first frame: got %d violations, want 1", len(got))
	}
	clock.advance(100 * time.Millisecond)
	if got := s.Process(&landmark.Frame{}); len(got) != 0 {
		t.Fatalf("inside cooldown: got %d violations, want 0", len(got))
	}
	clock.advance(violation.DefaultCooldown)
	if got := s.Process(&landmark.Frame{}); len(got) != 1 {
		t.Fatalf("after cooldown: got %d violations, want 1", len(got))
	}
	if s.FramesProcessed() != 3 {
		t.Errorf("got %d frames processed, want 3", s.FramesProcessed())
	}
}

func TestProcess_AttributesFaceIdentity(t *testing.T) {
	repo := &fakeRepo{}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(repo, nil, clock)
	defer s.Close()

	// Face far right of frame center triggers a head_turned event.
	frame := &landmark.Frame{Faces: []landmark.Face{makeFace(0.9, 0.5, 0.1)}}
	emitted := s.Process(frame)

	var turned *violation.Violation
	for i := range emitted {
		if emitted[i].Type == violation.TypeHeadTurned {
			turned = &emitted[i]
		}
	}
	if turned == nil {
		t.Fatalf("expected a head_turned violation, got %v", emitted)
	}
	faceID, _ := turned.Evidence["source_face_id"].(string)
	if faceID == "" {
		t.Fatal("head_turned violation missing source_face_id evidence")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	found := false
	for _, data := range repo.violations {
		if data.ViolationID == turned.ID {
			found = true
			if data.FaceID != faceID {
				t.Errorf("persisted face id %q, want %q", data.FaceID, faceID)
			}
		}
	}
	if !found {
		t.Error("head_turned violation was not persisted")
	}
}

func TestProcess_SameFaceKeepsIdentityAcrossFrames(t *testing.T) {
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(nil, nil, clock)
	defer s.Close()

	frame := &landmark.Frame{Faces: []landmark.Face{makeFace(0.9, 0.5, 0.1)}}
	first := s.Process(frame)
	clock.advance(violation.DefaultCooldown + time.Second)
	second := s.Process(frame)

	id1 := faceIDOf(t, first, violation.TypeHeadTurned)
	id2 := faceIDOf(t, second, violation.TypeHeadTurned)
	if id1 != id2 {
		t.Errorf("face identity changed across frames: %q then %q", id1, id2)
	}
}

func faceIDOf(t *testing.T, vs []violation.Violation, vtype violation.Type) string {
	t.Helper()
	for _, v := range vs {
		if v.Type == vtype {
			id, _ := v.Evidence["source_face_id"].(string)
			return id
		}
	}
	t.Fatalf("no %s violation in %v", vtype, vs)
	return ""
}

func TestCompliancePath_SharesLogAndListener(t *testing.T) {
	repo := &fakeRepo{}
	sink := &capture{}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(repo, sink, clock)
	defer s.Close()

	s.Monitor().SetFocus(false)

	got := sink.snapshot()
	if len(got) != 1 {
		t.Fatalf("got %d violations, want 1", len(got))
	}
	if got[0].Type != violation.TypeWindowBlur {
		t.Errorf("got type %q, want %q", got[0].Type, violation.TypeWindowBlur)
	}
	if repo.violationCount() != 1 {
		t.Errorf("got %d persisted violations, want 1", repo.violationCount())
	}
	if n := len(s.Violations()); n != 1 {
		t.Errorf("session log holds %d violations, want 1", n)
	}
}

func TestStartClose_RecordsLifecycleEvents(t *testing.T) {
	repo := &fakeRepo{}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(repo, nil, clock)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Process(&landmark.Frame{})
	clock.advance(42 * time.Second)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	repo.mu.Lock()
	sessions := append([]store.SessionEventData(nil), repo.sessions...)
	repo.mu.Unlock()

	if len(sessions) != 2 {
		t.Fatalf("got %d session events, want 2", len(sessions))
	}
	if sessions[0].Action != "start" || sessions[1].Action != "end" {
		t.Fatalf("got actions %q, %q; want start, end", sessions[0].Action, sessions[1].Action)
	}
	end := sessions[1]
	if end.FramesProcessed != 1 {
		t.Errorf("got %d frames processed, want 1", end.FramesProcessed)
	}
	if end.ViolationCount != 1 {
		t.Errorf("got %d violations, want 1", end.ViolationCount)
	}
	if end.DurationSecs != 42 {
		t.Errorf("got duration %d, want 42", end.DurationSecs)
	}
	if end.SeverityCounts[string(violation.SeverityMedium)] != 1 {
		t.Errorf("got severity counts %v, want one medium", end.SeverityCounts)
	}

	// Second close is a no-op; no duplicate end event.
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	repo.mu.Lock()
	n := len(repo.sessions)
	repo.mu.Unlock()
	if n != 2 {
		t.Errorf("got %d session events after double close, want 2", n)
	}
}

func TestLoop_PollsDetector(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	det := DetectorFunc(func(context.Context) (*landmark.Frame, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return &landmark.Frame{Faces: []landmark.Face{makeFace(0.5, 0.5, 0.3)}}, nil
	})

	cfg := DefaultConfig()
	cfg.SampleInterval = 5 * time.Millisecond
	s := New(cfg, det, nil, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	time.Sleep(60 * time.Millisecond)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	mu.Lock()
	n := calls
	mu.Unlock()
	if n == 0 {
		t.Fatal("detector was never polled")
	}
	if s.FramesProcessed() == 0 {
		t.Error("frames were polled but not processed")
	}
}

func TestLoop_NilFrameSkipsProcessing(t *testing.T) {
	det := DetectorFunc(func(context.Context) (*landmark.Frame, error) {
		return nil, nil
	})
	cfg := DefaultConfig()
	cfg.SampleInterval = 5 * time.Millisecond
	s := New(cfg, det, nil, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if n := s.FramesProcessed(); n != 0 {
		t.Errorf("nil frames should be skipped, processed %d", n)
	}
}
