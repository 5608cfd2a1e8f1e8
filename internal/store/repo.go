package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the persisted form of a session's confidence report.
type SnapshotData struct {
	Version     int                `json:"version"`
	SessionID   string             `json:"session_id"`
	Score       float64            `json:"score"`
	Level       string             `json:"level"`
	Factors     map[string]float64 `json:"factors"`
	Explanation string             `json:"explanation"`
}

// Snapshot represents a point-in-time capture of a session report.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Data      SnapshotData
}

// SnapshotRepo manages session report snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for the session, or nil
	// if none exist.
	Latest(ctx context.Context, sessionID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ViolationEventData captures the data for a single violation event.
type ViolationEventData struct {
	SessionID   string
	ViolationID string
	Type        string
	Severity    string
	Confidence  float64
	Message     string
	FaceID      string
	Evidence    map[string]any
	Timestamp   time.Time
}

// ViolationRecord is a persisted violation event read back from the log.
type ViolationRecord struct {
	Sequence    int64
	Timestamp   time.Time
	SessionID   string
	ViolationID string
	Type        string
	Severity    string
	Confidence  float64
	Message     string
	FaceID      string
	Evidence    map[string]any
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	FramesProcessed int
	ViolationCount  int
	DurationSecs    int
	SeverityCounts  map[string]int
}

// SessionSummaryRecord aggregates one session for the stats command.
type SessionSummaryRecord struct {
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time
	FramesProcessed int
	ViolationCount  int
	DurationSecs    int
	SeverityCounts  map[string]int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted LLM request event read back from the log.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendViolation records an integrity violation event.
	AppendViolation(ctx context.Context, data ViolationEventData) error

	// QueryViolations returns violations for a session, newest first.
	QueryViolations(ctx context.Context, sessionID string, opts QueryOpts) ([]ViolationRecord, error)

	// CountViolationsBySeverity aggregates a session's violations.
	CountViolationsBySeverity(ctx context.Context, sessionID string) (map[string]int, error)

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns per-session aggregates, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM request event by row ID, or nil when
	// no such event exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
}
