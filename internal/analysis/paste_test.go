package analysis

import (
	"math"
	"strings"
	"testing"
)

func TestAnalyzePastes_Empty(t *testing.T) {
	report := AnalyzePastes(nil)
	if report.SuspicionScore != 0 || report.PasteCount != 0 {
		t.Errorf("empty input produced %+v, want zero report", report)
	}
}

func TestAnalyzePastes_SingleSmallPasteIsClean(t *testing.T) {
	report := AnalyzePastes([]PasteEvent{{Timestamp: 10, Content: "a short phrase"}})
	if report.SuspicionScore != 0 {
		t.Errorf("score = %f, want 0 (patterns: %v)", report.SuspicionScore, report.Patterns)
	}
}

func TestAnalyzePastes_RapidBurst(t *testing.T) {
	events := []PasteEvent{
		{Timestamp: 0, Content: "one"},
		{Timestamp: 5, Content: "two"},
		{Timestamp: 12, Content: "three"},
		{Timestamp: 30, Content: "four"},
	}
	report := AnalyzePastes(events)
	if !hasPattern(report.Patterns, "rapid_multiple_pastes") {
		t.Errorf("patterns = %v, want rapid_multiple_pastes", report.Patterns)
	}
	if math.Abs(report.SuspicionScore-0.4) > 1e-9 {
		t.Errorf("score = %f, want 0.4", report.SuspicionScore)
	}
	if report.TimeSpanSeconds != 30 {
		t.Errorf("time span = %f, want 30", report.TimeSpanSeconds)
	}
}

func TestAnalyzePastes_SpreadOutPastesNotBursty(t *testing.T) {
	// Four pastes across five minutes: count trips the threshold but the
	// window does not.
	events := []PasteEvent{
		{Timestamp: 0, Content: "one"},
		{Timestamp: 100, Content: "two"},
		{Timestamp: 200, Content: "three"},
		{Timestamp: 300, Content: "four"},
	}
	if report := AnalyzePastes(events); hasPattern(report.Patterns, "rapid_multiple_pastes") {
		t.Errorf("patterns = %v, rapid_multiple_pastes not expected", report.Patterns)
	}
}

func TestAnalyzePastes_LargeSinglePaste(t *testing.T) {
	report := AnalyzePastes([]PasteEvent{{Timestamp: 0, Content: strings.Repeat("x", 600)}})
	if !hasPattern(report.Patterns, "large_single_paste") {
		t.Errorf("patterns = %v, want large_single_paste", report.Patterns)
	}
	if report.MaxLength != 600 {
		t.Errorf("max length = %d, want 600", report.MaxLength)
	}
}

func TestAnalyzePastes_VolumeAndBurstStack(t *testing.T) {
	// Four large pastes within a minute trip all three patterns and the
	// description threshold.
	events := make([]PasteEvent, 4)
	for i := range events {
		events[i] = PasteEvent{Timestamp: float64(i * 10), Content: strings.Repeat("y", 600)}
	}
	report := AnalyzePastes(events)
	want := []string{"rapid_multiple_pastes", "large_paste_volume", "large_single_paste"}
	for _, p := range want {
		if !hasPattern(report.Patterns, p) {
			t.Errorf("patterns = %v, missing %s", report.Patterns, p)
		}
	}
	if math.Abs(report.SuspicionScore-0.9) > 1e-9 {
		t.Errorf("score = %f, want 0.9", report.SuspicionScore)
	}
	if !strings.Contains(report.Description, "Suspicious paste activity") {
		t.Errorf("description = %q", report.Description)
	}
}
