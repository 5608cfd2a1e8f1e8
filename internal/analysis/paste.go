package analysis

import (
	"math"
	"strings"
)

// PasteEvent is one clipboard insertion into the answer field.
type PasteEvent struct {
	Timestamp float64 `json:"timestamp"`
	Content   string  `json:"content,omitempty"`
}

// PasteReport scores clipboard activity for one answer.
type PasteReport struct {
	PasteCount      int      `json:"paste_count"`
	TimeSpanSeconds float64  `json:"time_span_seconds"`
	TotalLength     int      `json:"total_length"`
	MaxLength       int      `json:"max_length"`
	Patterns        []string `json:"patterns"`
	SuspicionScore  float64  `json:"suspicion_score"`
	Description     string   `json:"description,omitempty"`
}

// Paste suspicion thresholds.
const (
	pasteBurstCount   = 3
	pasteBurstWindow  = 60.0
	pasteTotalLength  = 1000
	pasteSingleLength = 500
)

// AnalyzePastes flags clipboard patterns consistent with copying an
// answer in from elsewhere: several pastes inside a minute, a large
// pasted total, or one oversized paste.
func AnalyzePastes(events []PasteEvent) PasteReport {
	report := PasteReport{PasteCount: len(events)}
	if len(events) == 0 {
		return report
	}

	minTS, maxTS := events[0].Timestamp, events[0].Timestamp
	for _, ev := range events {
		minTS = math.Min(minTS, ev.Timestamp)
		maxTS = math.Max(maxTS, ev.Timestamp)
		report.TotalLength += len(ev.Content)
		if len(ev.Content) > report.MaxLength {
			report.MaxLength = len(ev.Content)
		}
	}
	report.TimeSpanSeconds = maxTS - minTS

	if report.PasteCount > pasteBurstCount && report.TimeSpanSeconds < pasteBurstWindow {
		report.Patterns = append(report.Patterns, "rapid_multiple_pastes")
		report.SuspicionScore += 0.4
	}
	if report.TotalLength > pasteTotalLength {
		report.Patterns = append(report.Patterns, "large_paste_volume")
		report.SuspicionScore += 0.3
	}
	if report.MaxLength > pasteSingleLength {
		report.Patterns = append(report.Patterns, "large_single_paste")
		report.SuspicionScore += 0.2
	}
	report.SuspicionScore = math.Min(report.SuspicionScore, 1.0)

	if report.SuspicionScore > 0.5 {
		report.Description = "Suspicious paste activity: " + strings.Join(report.Patterns, ", ")
	}
	return report
}
