package analysis

import (
	"math"
	"testing"
)

// keysAt builds one KeyEvent per timestamp.
func keysAt(timestamps ...float64) []KeyEvent {
	events := make([]KeyEvent, len(timestamps))
	for i, ts := range timestamps {
		events[i] = KeyEvent{Timestamp: ts}
	}
	return events
}

func hasPattern(patterns []string, want string) bool {
	for _, p := range patterns {
		if p == want {
			return true
		}
	}
	return false
}

func TestAnalyzeTyping_HumanCadenceIsClean(t *testing.T) {
	// Irregular intervals between 150ms and 600ms, ~28 wpm.
	report := AnalyzeTyping(keysAt(0, 0.2, 0.5, 0.65, 1.1, 1.5, 1.7, 2.3))
	if report.SuspicionScore != 0 {
		t.Errorf("score = %f, want 0 (patterns: %v)", report.SuspicionScore, report.Patterns)
	}
	if report.Metrics.EventCount != 8 {
		t.Errorf("event count = %d, want 8", report.Metrics.EventCount)
	}
}

func TestAnalyzeTyping_ConsistentTiming(t *testing.T) {
	// Metronomic 500ms intervals: zero deviation, bot-like.
	report := AnalyzeTyping(keysAt(0, 0.5, 1.0, 1.5, 2.0, 2.5))
	if !hasPattern(report.Patterns, "unusually_consistent_timing") {
		t.Errorf("patterns = %v, want unusually_consistent_timing", report.Patterns)
	}
	if math.Abs(report.SuspicionScore-0.3) > 1e-9 {
		t.Errorf("score = %f, want 0.3", report.SuspicionScore)
	}
}

func TestAnalyzeTyping_PauseBurstPattern(t *testing.T) {
	// A 10s pause followed by sub-100ms bursts with jitter so the
	// consistency check stays quiet.
	report := AnalyzeTyping(keysAt(0, 0.4, 10.4, 10.42, 10.49, 10.53, 11.1, 12.0))
	if !hasPattern(report.Patterns, "pause_burst_pattern") {
		t.Errorf("patterns = %v, want pause_burst_pattern", report.Patterns)
	}
}

func TestAnalyzeTyping_FastAndConsistent(t *testing.T) {
	// 60ms metronomic intervals: over 120 wpm and machine-steady, so the
	// fast and consistent patterns stack to 0.7.
	events := make([]KeyEvent, 40)
	for i := range events {
		events[i] = KeyEvent{Timestamp: float64(i) * 0.06}
	}
	report := AnalyzeTyping(events)
	if !hasPattern(report.Patterns, "extremely_fast_typing") {
		t.Errorf("patterns = %v, want extremely_fast_typing", report.Patterns)
	}
	if !hasPattern(report.Patterns, "unusually_consistent_timing") {
		t.Errorf("patterns = %v, want unusually_consistent_timing", report.Patterns)
	}
	if math.Abs(report.SuspicionScore-0.7) > 1e-9 {
		t.Errorf("score = %f, want 0.7", report.SuspicionScore)
	}
	if report.Description == "" {
		t.Error("high-suspicion report should carry a description")
	}
}

func TestAnalyzeTyping_UnsortedInput(t *testing.T) {
	a := AnalyzeTyping(keysAt(2.0, 0, 1.0, 0.5, 1.5))
	b := AnalyzeTyping(keysAt(0, 0.5, 1.0, 1.5, 2.0))
	if a.Metrics != b.Metrics {
		t.Errorf("unsorted input changed metrics: %+v vs %+v", a.Metrics, b.Metrics)
	}
}

func TestAnalyzeTyping_TooFewEvents(t *testing.T) {
	report := AnalyzeTyping(keysAt(1.0))
	if report.SuspicionScore != 0 || len(report.Patterns) != 0 {
		t.Errorf("single event produced %+v, want empty report", report)
	}
	if report.Metrics.EventCount != 1 {
		t.Errorf("event count = %d, want 1", report.Metrics.EventCount)
	}
}
