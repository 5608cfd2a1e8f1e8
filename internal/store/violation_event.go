package store

import (
	"context"
	"fmt"

	"github.com/abhisek/vigil/ent"
	"github.com/abhisek/vigil/ent/violationevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendViolation(ctx context.Context, data ViolationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ViolationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetViolationID(data.ViolationID).
		SetViolationType(data.Type).
		SetSeverity(data.Severity).
		SetConfidence(data.Confidence).
		SetMessage(data.Message).
		SetFaceID(data.FaceID)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}
	if len(data.Evidence) > 0 {
		builder = builder.SetEvidence(data.Evidence)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save violation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryViolations(ctx context.Context, sessionID string, opts QueryOpts) ([]ViolationRecord, error) {
	query := r.client.ViolationEvent.Query().
		Where(violationevent.SessionID(sessionID)).
		Order(ent.Desc(violationevent.FieldSequence))

	if opts.After > 0 {
		query = query.Where(violationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(violationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(violationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(violationevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query violation events: %w", err)
	}

	records := make([]ViolationRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ViolationRecord{
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
			SessionID:   e.SessionID,
			ViolationID: e.ViolationID,
			Type:        e.ViolationType,
			Severity:    e.Severity,
			Confidence:  e.Confidence,
			Message:     e.Message,
			FaceID:      e.FaceID,
			Evidence:    e.Evidence,
		})
	}
	return records, nil
}

func (r *eventRepo) CountViolationsBySeverity(ctx context.Context, sessionID string) (map[string]int, error) {
	events, err := r.client.ViolationEvent.Query().
		Where(violationevent.SessionID(sessionID)).
		Select(violationevent.FieldSeverity).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query violation severities: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Severity]++
	}
	return counts, nil
}
