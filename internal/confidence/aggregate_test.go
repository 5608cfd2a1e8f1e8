package confidence

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestAggregate_WeightedScore(t *testing.T) {
	f := Factors{
		ContentQuality:   1.0,
		WritingStyle:     0.5,
		AnswerComplexity: 0.0,
		TimeAnalysis:     0.0,
		PatternDetection: 0.0,
	}
	b := Aggregate(f, DefaultWeights(), 0)

	want := 1.0*0.30 + 0.5*0.20
	if math.Abs(b.Score-want) > 1e-9 {
		t.Errorf("score = %f, want %f", b.Score, want)
	}
	if math.Abs(b.Weighted["content_quality"]-0.30) > 1e-9 {
		t.Errorf("content_quality contribution = %f, want 0.30", b.Weighted["content_quality"])
	}
}

func TestAggregate_BoundsUnderAdversarialInput(t *testing.T) {
	cases := []Factors{
		{ContentQuality: 5, WritingStyle: 3, AnswerComplexity: 99, TimeAnalysis: 2, PatternDetection: 7},
		{ContentQuality: -5, WritingStyle: -1, AnswerComplexity: -0.5, TimeAnalysis: -100, PatternDetection: -2},
		{ContentQuality: math.Inf(1), WritingStyle: 1, AnswerComplexity: 1, TimeAnalysis: 1, PatternDetection: 1},
		{ContentQuality: math.Inf(-1)},
	}
	for i, f := range cases {
		b := Aggregate(f, DefaultWeights(), 0)
		if b.Score < 0 || b.Score > 1 {
			t.Errorf("case %d: score %f out of [0,1]", i, b.Score)
		}
		for name, v := range b.Weighted {
			if v < 0 || v > 1 {
				t.Errorf("case %d: factor %s contribution %f out of [0,1]", i, name, v)
			}
		}
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	f := Factors{
		ContentQuality:   0.7,
		WritingStyle:     0.4,
		AnswerComplexity: 0.9,
		TimeAnalysis:     0.2,
		PatternDetection: 0.6,
	}
	first := Aggregate(f, DefaultWeights(), 0)
	for i := 0; i < 20; i++ {
		got := Aggregate(f, DefaultWeights(), 0)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n got %+v\nwant %+v", i, got, first)
		}
	}
}

func TestAggregate_ZeroWeightsUseDefaults(t *testing.T) {
	f := Factors{ContentQuality: 1}
	b := Aggregate(f, Weights{}, 0)
	if math.Abs(b.Score-0.30) > 1e-9 {
		t.Errorf("score with zero weights = %f, want 0.30", b.Score)
	}
}

func TestAggregate_CustomWeightsNormalized(t *testing.T) {
	// Weights summing to 2.0 behave like the same ratios summing to 1.0.
	w := Weights{ContentQuality: 1.0, WritingStyle: 1.0}
	f := Factors{ContentQuality: 0.8, WritingStyle: 0.4}
	b := Aggregate(f, w, 0)
	want := 0.8*0.5 + 0.4*0.5
	if math.Abs(b.Score-want) > 1e-9 {
		t.Errorf("score = %f, want %f", b.Score, want)
	}
}

func TestAggregate_RedFlagPenalty(t *testing.T) {
	f := Factors{
		ContentQuality:   1.0,
		WritingStyle:     1.0,
		AnswerComplexity: 1.0,
		TimeAnalysis:     1.0,
		PatternDetection: 1.0,
	}
	b := Aggregate(f, DefaultWeights(), -0.5)

	if math.Abs(b.RawScore-1.0) > 1e-9 {
		t.Errorf("raw score = %f, want 1.0", b.RawScore)
	}
	if math.Abs(b.Score-0.5) > 1e-9 {
		t.Errorf("score = %f, want 0.5", b.Score)
	}
	if !strings.Contains(b.Explanation, "red-flag penalty") {
		t.Errorf("explanation %q does not mention the penalty", b.Explanation)
	}
}

func TestAggregate_PenaltyClamped(t *testing.T) {
	f := Factors{ContentQuality: 1, WritingStyle: 1, AnswerComplexity: 1, TimeAnalysis: 1, PatternDetection: 1}

	// A penalty below -1 clamps to -1, not past it.
	b := Aggregate(f, DefaultWeights(), -50)
	if b.RedFlagPenalty != -1 {
		t.Errorf("penalty = %f, want -1", b.RedFlagPenalty)
	}
	if b.Score < 0 || b.Score > 1 {
		t.Errorf("score %f out of [0,1]", b.Score)
	}

	// A positive penalty is treated as zero.
	b = Aggregate(f, DefaultWeights(), 0.7)
	if b.RedFlagPenalty != 0 {
		t.Errorf("positive penalty kept: %f", b.RedFlagPenalty)
	}
	if math.Abs(b.Score-b.RawScore) > 1e-9 {
		t.Errorf("score %f diverged from raw %f with zero penalty", b.Score, b.RawScore)
	}
}

func TestPatternFactor(t *testing.T) {
	cases := []struct {
		counts map[string]int
		want   float64
	}{
		{nil, 0},
		{map[string]int{"medium": 2}, 0.1},
		{map[string]int{"critical": 10}, 1.0},
		{map[string]int{"critical": 100}, 1.0},
		{map[string]int{"low": 1, "high": 1}, 0.1},
		{map[string]int{"unknown": 2}, 0.1},
	}
	for i, tc := range cases {
		if got := PatternFactor(tc.counts); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("case %d: PatternFactor = %f, want %f", i, got, tc.want)
		}
	}
}

func TestRedFlagPenalty(t *testing.T) {
	cases := []struct {
		findings int
		want     float64
	}{
		{0, 0},
		{-3, 0},
		{1, -0.25},
		{2, -0.5},
		{4, -1},
		{10, -1},
	}
	for _, tc := range cases {
		if got := RedFlagPenalty(tc.findings); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("RedFlagPenalty(%d) = %f, want %f", tc.findings, got, tc.want)
		}
	}
}

func TestLevelFor_Breakpoints(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{0.0, LevelLow},
		{0.19, LevelLow},
		{0.20, LevelLowModerate},
		{0.34, LevelLowModerate},
		{0.35, LevelModerate},
		{0.49, LevelModerate},
		{0.50, LevelModerateHigh},
		{0.64, LevelModerateHigh},
		{0.65, LevelHigh},
		{0.79, LevelHigh},
		{0.80, LevelVeryHigh},
		{1.0, LevelVeryHigh},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Errorf("LevelFor(%.2f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestAggregate_ExplanationNamesDominantFactors(t *testing.T) {
	f := Factors{ContentQuality: 1.0, PatternDetection: 0.9}
	b := Aggregate(f, DefaultWeights(), 0)
	if got := b.Explanation; got == "" {
		t.Fatal("empty explanation")
	}
	for _, name := range []string{"content_quality", "pattern_detection"} {
		if !strings.Contains(b.Explanation, name) {
			t.Errorf("explanation %q missing dominant factor %s", b.Explanation, name)
		}
	}
	if strings.Contains(b.Explanation, "time_analysis") {
		t.Errorf("explanation %q names a zero factor", b.Explanation)
	}
}
