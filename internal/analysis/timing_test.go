package analysis

import (
	"testing"
	"time"
)

func TestAnalyzeCompletionTime_Scores(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expected := 100 * time.Second

	cases := []struct {
		name     string
		elapsed  time.Duration
		score    float64
		rapid    bool
		veryFast bool
	}{
		{"extremely rapid", 5 * time.Second, 0.9, true, true},
		{"very rapid", 20 * time.Second, 0.7, true, false},
		{"rapid", 40 * time.Second, 0.4, false, false},
		{"normal", 80 * time.Second, 0, false, false},
		{"slow", 150 * time.Second, 0, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := AnalyzeCompletionTime(start, start.Add(tc.elapsed), expected)
			if report.SuspicionScore != tc.score {
				t.Errorf("score = %f, want %f", report.SuspicionScore, tc.score)
			}
			if report.Rapid != tc.rapid {
				t.Errorf("rapid = %v, want %v", report.Rapid, tc.rapid)
			}
			if report.VeryRapid != tc.veryFast {
				t.Errorf("veryRapid = %v, want %v", report.VeryRapid, tc.veryFast)
			}
		})
	}
}

func TestAnalyzeCompletionTime_ZeroExpected(t *testing.T) {
	start := time.Now()
	report := AnalyzeCompletionTime(start, start.Add(time.Second), 0)
	if report.Ratio != 1.0 {
		t.Errorf("ratio with zero expected = %f, want 1.0", report.Ratio)
	}
	if report.SuspicionScore != 0 {
		t.Errorf("score with zero expected = %f, want 0", report.SuspicionScore)
	}
}
