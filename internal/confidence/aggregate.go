// Package confidence combines independent analysis signals into a
// single weighted score with a qualitative level and a human-readable
// explanation.
package confidence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/vigil/internal/geometry"
)

// Factors holds the per-signal scores feeding the aggregate. Each value
// is expected in [0,1]; out-of-range inputs are clamped during
// aggregation so a misbehaving upstream analyzer cannot push the final
// score outside its bounds.
type Factors struct {
	ContentQuality   float64 `json:"content_quality"`
	WritingStyle     float64 `json:"writing_style"`
	AnswerComplexity float64 `json:"answer_complexity"`
	TimeAnalysis     float64 `json:"time_analysis"`
	PatternDetection float64 `json:"pattern_detection"`
}

// Weights assigns the relative importance of each factor. The defaults
// sum to 1.0; custom weights are normalized when they do not.
type Weights struct {
	ContentQuality   float64
	WritingStyle     float64
	AnswerComplexity float64
	TimeAnalysis     float64
	PatternDetection float64
}

// WeightsVersion identifies the current factor weighting. Bump when the
// default weights change, since that changes scoring semantics for
// stored breakdowns.
const WeightsVersion = 1

// DefaultWeights returns the standard factor weighting.
func DefaultWeights() Weights {
	return Weights{
		ContentQuality:   0.30,
		WritingStyle:     0.20,
		AnswerComplexity: 0.15,
		TimeAnalysis:     0.15,
		PatternDetection: 0.20,
	}
}

// Level buckets a score into a qualitative band.
type Level string

const (
	LevelLow          Level = "low"
	LevelLowModerate  Level = "low_moderate"
	LevelModerate     Level = "moderate"
	LevelModerateHigh Level = "moderate_high"
	LevelHigh         Level = "high"
	LevelVeryHigh     Level = "very_high"
)

// Breakdown is the full aggregation result: the raw weighted score, the
// red-flag penalty that was applied, the final bounded score with its
// level, the clamped per-factor contributions, and an explanation
// listing the dominant factors.
type Breakdown struct {
	RawScore       float64            `json:"raw_score"`
	RedFlagPenalty float64            `json:"red_flag_penalty"`
	Score          float64            `json:"score"`
	Level          Level              `json:"level"`
	Factors        Factors            `json:"factors"`
	Weighted       map[string]float64 `json:"weighted"`
	Explanation    string             `json:"explanation"`
}

type factorEntry struct {
	name     string
	value    float64
	weight   float64
	weighted float64
}

// Aggregate computes the weighted confidence score. redFlagPenalty is a
// non-positive adjustment from hard evidence, applied after the weighted
// sum and clamped to [-1,0]; positive values are treated as zero. The
// function is pure and deterministic: identical inputs always produce
// identical breakdowns, including the explanation text.
func Aggregate(f Factors, w Weights, redFlagPenalty float64) Breakdown {
	entries := []factorEntry{
		{"content_quality", geometry.Clamp(f.ContentQuality, 0, 1), w.ContentQuality, 0},
		{"writing_style", geometry.Clamp(f.WritingStyle, 0, 1), w.WritingStyle, 0},
		{"answer_complexity", geometry.Clamp(f.AnswerComplexity, 0, 1), w.AnswerComplexity, 0},
		{"time_analysis", geometry.Clamp(f.TimeAnalysis, 0, 1), w.TimeAnalysis, 0},
		{"pattern_detection", geometry.Clamp(f.PatternDetection, 0, 1), w.PatternDetection, 0},
	}

	var total float64
	for _, e := range entries {
		total += e.weight
	}
	if total <= 0 {
		w = DefaultWeights()
		entries[0].weight = w.ContentQuality
		entries[1].weight = w.WritingStyle
		entries[2].weight = w.AnswerComplexity
		entries[3].weight = w.TimeAnalysis
		entries[4].weight = w.PatternDetection
		total = 1.0
	}

	var raw float64
	weighted := make(map[string]float64, len(entries))
	for i := range entries {
		entries[i].weight /= total
		entries[i].weighted = entries[i].value * entries[i].weight
		raw += entries[i].weighted
		weighted[entries[i].name] = entries[i].weighted
	}
	raw = geometry.Clamp(raw, 0, 1)
	penalty := geometry.Clamp(redFlagPenalty, -1, 0)
	score := geometry.Clamp(raw+penalty, 0, 1)

	return Breakdown{
		RawScore:       raw,
		RedFlagPenalty: penalty,
		Score:          score,
		Level:          LevelFor(score),
		Factors: Factors{
			ContentQuality:   entries[0].value,
			WritingStyle:     entries[1].value,
			AnswerComplexity: entries[2].value,
			TimeAnalysis:     entries[3].value,
			PatternDetection: entries[4].value,
		},
		Weighted:    weighted,
		Explanation: explain(score, penalty, entries),
	}
}

// LevelFor maps a score in [0,1] to its qualitative band.
func LevelFor(score float64) Level {
	switch {
	case score < 0.20:
		return LevelLow
	case score < 0.35:
		return LevelLowModerate
	case score < 0.50:
		return LevelModerate
	case score < 0.65:
		return LevelModerateHigh
	case score < 0.80:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// explain renders the dominant factors in descending weighted
// contribution. Ties break on factor name so the output is stable.
func explain(score, penalty float64, entries []factorEntry) string {
	sorted := make([]factorEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].weighted != sorted[j].weighted {
			return sorted[i].weighted > sorted[j].weighted
		}
		return sorted[i].name < sorted[j].name
	})

	var dominant []string
	for _, e := range sorted {
		if e.weighted >= 0.10 {
			dominant = append(dominant, fmt.Sprintf("%s (%.2f)", e.name, e.value))
		}
	}

	var b strings.Builder
	if len(dominant) == 0 {
		fmt.Fprintf(&b, "Suspicion score %.2f (%s): no individual factor contributed strongly", score, LevelFor(score))
	} else {
		fmt.Fprintf(&b, "Suspicion score %.2f (%s), driven by %s", score, LevelFor(score), strings.Join(dominant, ", "))
	}
	if penalty < 0 {
		fmt.Fprintf(&b, "; red-flag penalty %.2f applied", penalty)
	}
	return b.String()
}
