package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestViolationAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendViolation(ctx, ViolationEventData{
		SessionID:   "sess-1",
		ViolationID: "v-1",
		Type:        "gaze_deviation",
		Severity:    "medium",
		Confidence:  0.42,
		Message:     "Looking away from screen",
		FaceID:      "face-1",
		Evidence:    map[string]any{"direction": "left"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendViolation(ctx, ViolationEventData{
		SessionID:   "sess-1",
		ViolationID: "v-2",
		Type:        "multiple_faces",
		Severity:    "high",
		Confidence:  1.0,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	// A violation in another session must not appear.
	err = repo.AppendViolation(ctx, ViolationEventData{
		SessionID:   "sess-2",
		ViolationID: "v-3",
		Type:        "no_face",
		Severity:    "medium",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryViolations(ctx, "sess-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].ViolationID != "v-2" || records[1].ViolationID != "v-1" {
		t.Errorf("order = [%s %s], want [v-2 v-1]", records[0].ViolationID, records[1].ViolationID)
	}
	if records[1].Evidence["direction"] != "left" {
		t.Errorf("evidence not round-tripped: %+v", records[1].Evidence)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", records[1].Sequence, records[0].Sequence)
	}
}

func TestViolationQueryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendViolation(ctx, ViolationEventData{
			SessionID:   "sess-1",
			ViolationID: string(rune('a' + i)),
			Type:        "no_face",
			Severity:    "medium",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryViolations(ctx, "sess-1", QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestCountViolationsBySeverity(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	severities := []string{"medium", "medium", "high", "critical"}
	for i, sev := range severities {
		err := repo.AppendViolation(ctx, ViolationEventData{
			SessionID:   "sess-1",
			ViolationID: string(rune('a' + i)),
			Type:        "device_detected",
			Severity:    sev,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	counts, err := repo.CountViolationsBySeverity(ctx, "sess-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts["medium"] != 2 || counts["high"] != 1 || counts["critical"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:       "sess-1",
		Action:          "end",
		FramesProcessed: 900,
		ViolationCount:  4,
		DurationSecs:    60,
		SeverityCounts:  map[string]int{"medium": 3, "high": 1},
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
	// Open session with no end event.
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-2",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append start 2: %v", err)
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d summaries, want 2", len(records))
	}
	// Newest session first.
	if records[0].SessionID != "sess-2" {
		t.Errorf("first summary = %s, want sess-2", records[0].SessionID)
	}
	ended := records[1]
	if ended.FramesProcessed != 900 || ended.ViolationCount != 4 || ended.DurationSecs != 60 {
		t.Errorf("ended summary = %+v", ended)
	}
	if ended.SeverityCounts["medium"] != 3 {
		t.Errorf("severity counts = %v", ended.SeverityCounts)
	}
	if ended.StartedAt.IsZero() || ended.EndedAt.IsZero() {
		t.Error("timestamps not populated")
	}
}

func TestLLMRequestAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "transcript-classification",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    350,
		Success:      true,
		RequestBody:  "[user]\ntranscript text",
		ResponseBody: `{"flagged":false}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "transcript-classification" || e.Model != "gpt-4o-mini" {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.ResponseBody != `{"flagged":false}` {
		t.Errorf("response body %q not round-tripped", e.ResponseBody)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\ntranscript text" {
		t.Errorf("get by ID returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, e.ID+999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing ID, got %+v", missing)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "sess-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		SessionID: "sess-1",
		Data: SnapshotData{
			Version:   1,
			SessionID: "sess-1",
			Score:     0.37,
			Level:     "moderate",
			Factors:   map[string]float64{"pattern_detection": 0.6},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "sess-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Score != 0.37 || snap.Data.Level != "moderate" {
		t.Errorf("data = %+v", snap.Data)
	}

	// Other sessions see nothing.
	other, err := repo.Latest(ctx, "sess-2")
	if err != nil {
		t.Fatalf("latest (other): %v", err)
	}
	if other != nil {
		t.Error("snapshot leaked across sessions")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			SessionID: "sess-1",
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx, "sess-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='violation_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "violation_events" {
		t.Errorf("table name = %q, want 'violation_events'", name)
	}
}
