package analysis

import "time"

// TimingReport describes how a submission's duration compares to the
// expected working time.
type TimingReport struct {
	ActualSeconds   float64 `json:"actual_seconds"`
	ExpectedSeconds float64 `json:"expected_seconds"`
	Ratio           float64 `json:"ratio"`
	Rapid           bool    `json:"rapid"`
	VeryRapid       bool    `json:"very_rapid"`
	SuspicionScore  float64 `json:"suspicion_score"`
	Description     string  `json:"description,omitempty"`
}

// AnalyzeCompletionTime scores how suspiciously fast a submission was.
// Ratios under 10%, 30%, and 50% of the expected duration map to
// suspicion 0.9, 0.7, and 0.4. A non-positive expected duration is
// treated as ratio 1 so the report stays benign.
func AnalyzeCompletionTime(start, end time.Time, expected time.Duration) TimingReport {
	actual := end.Sub(start).Seconds()
	ratio := 1.0
	if expected > 0 {
		ratio = actual / expected.Seconds()
	}

	report := TimingReport{
		ActualSeconds:   actual,
		ExpectedSeconds: expected.Seconds(),
		Ratio:           ratio,
		Rapid:           ratio < 0.3,
		VeryRapid:       ratio < 0.1,
	}

	switch {
	case ratio < 0.1:
		report.SuspicionScore = 0.9
		report.Description = "Extremely rapid completion"
	case ratio < 0.3:
		report.SuspicionScore = 0.7
		report.Description = "Very rapid completion"
	case ratio < 0.5:
		report.SuspicionScore = 0.4
		report.Description = "Rapid completion"
	}
	return report
}
