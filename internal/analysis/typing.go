package analysis

import (
	"math"
	"sort"
	"strings"
)

// KeyEvent is one keystroke with its capture time in seconds since the
// session epoch.
type KeyEvent struct {
	Timestamp float64 `json:"timestamp"`
	Key       string  `json:"key,omitempty"`
}

// TypingMetrics summarizes inter-keystroke timing for one answer.
type TypingMetrics struct {
	EventCount     int     `json:"event_count"`
	TotalSeconds   float64 `json:"total_seconds"`
	AvgInterval    float64 `json:"avg_interval"`
	StdInterval    float64 `json:"std_interval"`
	MinInterval    float64 `json:"min_interval"`
	MaxInterval    float64 `json:"max_interval"`
	CharsPerSecond float64 `json:"chars_per_second"`
	WPMEstimate    float64 `json:"wpm_estimate"`
}

// TypingReport carries the metrics plus any anomaly patterns detected
// over them.
type TypingReport struct {
	Metrics        TypingMetrics `json:"metrics"`
	Patterns       []string      `json:"patterns"`
	SuspicionScore float64       `json:"suspicion_score"`
	Description    string        `json:"description,omitempty"`
}

// Typing anomaly thresholds. Intervals are in seconds.
const (
	typingConsistencyStd = 0.05
	typingFastWPM        = 120.0
	typingPauseInterval  = 5.0
	typingBurstInterval  = 0.1
)

// AnalyzeTyping derives timing metrics from raw keystroke events and
// flags three anomaly patterns: machine-consistent intervals, implausibly
// fast typing, and long pauses followed by bursts (dictation or copying
// from a second screen). Fewer than two events yields an empty report.
func AnalyzeTyping(events []KeyEvent) TypingReport {
	if len(events) < 2 {
		return TypingReport{Metrics: TypingMetrics{EventCount: len(events)}}
	}

	sorted := make([]KeyEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Timestamp < sorted[j].Timestamp })

	intervals := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		intervals = append(intervals, sorted[i].Timestamp-sorted[i-1].Timestamp)
	}

	m := TypingMetrics{
		EventCount:   len(sorted),
		TotalSeconds: sorted[len(sorted)-1].Timestamp - sorted[0].Timestamp,
		MinInterval:  intervals[0],
		MaxInterval:  intervals[0],
	}
	sum := 0.0
	for _, iv := range intervals {
		sum += iv
		m.MinInterval = math.Min(m.MinInterval, iv)
		m.MaxInterval = math.Max(m.MaxInterval, iv)
	}
	m.AvgInterval = sum / float64(len(intervals))

	variance := 0.0
	for _, iv := range intervals {
		d := iv - m.AvgInterval
		variance += d * d
	}
	m.StdInterval = math.Sqrt(variance / float64(len(intervals)))

	if m.TotalSeconds > 0 {
		m.CharsPerSecond = float64(m.EventCount) / m.TotalSeconds
		// Rough speed estimate at five characters per word.
		m.WPMEstimate = m.CharsPerSecond * 60 / 5
	}

	report := TypingReport{Metrics: m}
	if m.StdInterval < typingConsistencyStd && m.AvgInterval > 0 {
		report.Patterns = append(report.Patterns, "unusually_consistent_timing")
		report.SuspicionScore += 0.3
	}
	if m.WPMEstimate > typingFastWPM {
		report.Patterns = append(report.Patterns, "extremely_fast_typing")
		report.SuspicionScore += 0.4
	}
	if m.MaxInterval > typingPauseInterval && m.MinInterval < typingBurstInterval {
		report.Patterns = append(report.Patterns, "pause_burst_pattern")
		report.SuspicionScore += 0.3
	}
	report.SuspicionScore = math.Min(report.SuspicionScore, 1.0)

	if report.SuspicionScore > 0.5 {
		report.Description = "Suspicious typing patterns detected: " + strings.Join(report.Patterns, ", ")
	}
	return report
}
