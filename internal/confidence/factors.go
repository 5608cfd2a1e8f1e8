package confidence

import "github.com/abhisek/vigil/internal/geometry"

// severityWeight grades how much one violation of each severity
// contributes to the pattern-detection factor.
var severityWeight = map[string]float64{
	"low":      0.25,
	"medium":   0.50,
	"high":     0.75,
	"critical": 1.00,
}

// patternSaturation is the weighted violation mass at which the
// pattern-detection factor reaches 1.0.
const patternSaturation = 10.0

// PatternFactor derives the pattern-detection factor from a session's
// per-severity violation counts. Unknown severities count as medium.
func PatternFactor(counts map[string]int) float64 {
	var mass float64
	for sev, n := range counts {
		w, ok := severityWeight[sev]
		if !ok {
			w = severityWeight["medium"]
		}
		mass += w * float64(n)
	}
	return geometry.Clamp(mass/patternSaturation, 0, 1)
}

// redFlagStep is the penalty each piece of hard evidence contributes.
const redFlagStep = 0.25

// RedFlagPenalty converts a count of hard-evidence findings (answer
// dictation matches, known plagiarism indicators) into the non-positive
// aggregation penalty.
func RedFlagPenalty(findings int) float64 {
	if findings <= 0 {
		return 0
	}
	return geometry.Clamp(-redFlagStep*float64(findings), -1, 0)
}
