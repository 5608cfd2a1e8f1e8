package store

import (
	"context"
	"fmt"

	"github.com/abhisek/vigil/ent"
	"github.com/abhisek/vigil/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetFramesProcessed(data.FramesProcessed).
		SetViolationCount(data.ViolationCount).
		SetDurationSecs(data.DurationSecs)

	if len(data.SeverityCounts) > 0 {
		builder = builder.SetSeverityCounts(data.SeverityCounts)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	// Pair start/end events by session ID. End events carry the totals;
	// a session with no end event yet appears with zero counts.
	bySession := make(map[string]*SessionSummaryRecord)
	var order []string
	for i := len(events) - 1; i >= 0; i-- { // oldest first
		e := events[i]
		rec, ok := bySession[e.SessionID]
		if !ok {
			rec = &SessionSummaryRecord{SessionID: e.SessionID}
			bySession[e.SessionID] = rec
			order = append(order, e.SessionID)
		}
		switch e.Action {
		case "start":
			rec.StartedAt = e.Timestamp
		case "end":
			rec.EndedAt = e.Timestamp
			rec.FramesProcessed = e.FramesProcessed
			rec.ViolationCount = e.ViolationCount
			rec.DurationSecs = e.DurationSecs
			rec.SeverityCounts = e.SeverityCounts
		}
	}

	// Newest session first.
	records := make([]SessionSummaryRecord, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		records = append(records, *bySession[order[i]])
	}
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return records, nil
}
