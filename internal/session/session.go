// Package session runs the frame pipeline for one proctored sitting:
// it polls a Detector on a fixed cadence, classifies each frame,
// maintains face tracks, throttles raw signals into violations, and
// fans the violations out to the registered listener and the event log.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vigil/internal/classifier"
	"github.com/abhisek/vigil/internal/compliance"
	"github.com/abhisek/vigil/internal/landmark"
	"github.com/abhisek/vigil/internal/store"
	"github.com/abhisek/vigil/internal/tracker"
	"github.com/abhisek/vigil/internal/violation"
)

// Session drives the detection pipeline for one sitting.
type Session struct {
	id       string
	cfg      Config
	detector Detector
	listener violation.Listener
	events   store.EventRepo // nil disables persistence
	now      func() time.Time

	tracker  *tracker.Tracker
	throttle *violation.Throttle
	monitor  *compliance.Monitor

	frames  atomic.Int64
	busy    atomic.Bool
	started time.Time

	closeOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a Session. The listener receives every emitted violation;
// a nil listener is allowed. A nil repo disables persistence.
func New(cfg Config, detector Detector, listener violation.Listener, repo store.EventRepo) *Session {
	return newSession(cfg, detector, listener, repo, time.Now)
}

func newSession(cfg Config, detector Detector, listener violation.Listener, repo store.EventRepo, now func() time.Time) *Session {
	if cfg.SampleInterval <= 0 {
		cfg.SampleInterval = DefaultSampleInterval
	}
	if listener == nil {
		listener = func(violation.Violation) {}
	}

	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		detector: detector,
		listener: listener,
		events:   repo,
		now:      now,
		tracker:  tracker.New(cfg.Tracker),
		throttle: violation.NewThrottleWithClock(cfg.Throttle, now),
		done:     make(chan struct{}),
	}
	s.monitor = compliance.New(cfg.Compliance, s.publish)
	return s
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Monitor exposes the compliance state machine so the embedding surface
// can feed it browser events (fullscreen, visibility, focus, keys).
func (s *Session) Monitor() *compliance.Monitor { return s.monitor }

// FramesProcessed returns the number of frames run through the pipeline.
func (s *Session) FramesProcessed() int64 { return s.frames.Load() }

// Violations returns a copy of the bounded violation log.
func (s *Session) Violations() []violation.Violation {
	return s.throttle.Log().Snapshot()
}

// Start records the session start and launches the sampling loop.
// Returns an error only when the start event cannot be persisted.
func (s *Session) Start(ctx context.Context) error {
	s.started = s.now()

	if s.events != nil {
		err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.id,
			Action:    "start",
		})
		if err != nil {
			return fmt.Errorf("record session start: %w", err)
		}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go s.loop(loopCtx)
	return nil
}

// loop polls the detector once per sample interval. A tick that arrives
// while the previous frame is still being processed is skipped rather
// than queued, so a slow detector degrades the frame rate instead of
// building a backlog.
func (s *Session) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.SampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.busy.CompareAndSwap(false, true) {
				continue
			}
			frame, err := s.detector.Detect(ctx)
			if err == nil && frame != nil {
				s.Process(frame)
			}
			s.busy.Store(false)
		}
	}
}

// Process runs one frame through classify, track, attribute, and
// throttle, and returns the violations it emitted. Safe to call
// directly for replay paths that bypass the sampling loop.
func (s *Session) Process(frame *landmark.Frame) []violation.Violation {
	s.frames.Add(1)

	events := classifier.ClassifyFrame(frame, s.cfg.Classifier)

	var detections []landmark.Face
	if frame != nil {
		detections = frame.Faces
	}
	result := s.tracker.Update(detections)

	if len(detections) > 0 {
		s.throttle.ResetNoFace()
	}

	var emitted []violation.Violation
	for i := range events {
		if events[i].FaceIndex >= 0 {
			events[i].SourceFaceID = result.Assignments[events[i].FaceIndex]
		}
		if v := s.throttle.Record(events[i]); v != nil {
			s.persist(*v)
			s.listener(*v)
			emitted = append(emitted, *v)
		}
	}
	return emitted
}

// publish is the sink for compliance-path violations. They bypass the
// throttle's cooldown (the monitor has its own grace-period semantics)
// but still land in the session log, the store, and the listener.
func (s *Session) publish(v violation.Violation) {
	s.throttle.Append(v)
	s.persist(v)
	s.listener(v)
}

func (s *Session) persist(v violation.Violation) {
	if s.events == nil {
		return
	}
	faceID, _ := v.Evidence["source_face_id"].(string)
	err := s.events.AppendViolation(context.Background(), store.ViolationEventData{
		SessionID:   s.id,
		ViolationID: v.ID,
		Type:        string(v.Type),
		Severity:    string(v.Severity),
		Confidence:  v.Confidence,
		Message:     v.Message,
		FaceID:      faceID,
		Evidence:    v.Evidence,
		Timestamp:   v.Timestamp,
	})
	if err != nil {
		// Persistence failures must not stall the pipeline; the
		// in-memory log still holds the violation.
		return
	}
}

// Close stops the loop, tears down the compliance monitor, and records
// the session end event. Idempotent.
func (s *Session) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
		s.monitor.Close()
		if c, ok := s.detector.(io.Closer); ok {
			_ = c.Close()
		}

		if s.events == nil {
			return
		}
		log := s.throttle.Log()
		counts := make(map[string]int)
		for sev, n := range log.CountBySeverity() {
			counts[string(sev)] = n
		}
		err := s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:       s.id,
			Action:          "end",
			FramesProcessed: int(s.frames.Load()),
			ViolationCount:  log.Len(),
			DurationSecs:    int(s.now().Sub(s.started).Seconds()),
			SeverityCounts:  counts,
		})
		if err != nil {
			closeErr = fmt.Errorf("record session end: %w", err)
		}
	})
	return closeErr
}
