package analysis

import (
	"math"
	"testing"
)

func TestAnswerSimilarity_Identical(t *testing.T) {
	report := AnswerSimilarity("the quick brown fox", []string{"the quick brown fox"})
	if math.Abs(report.MaxSimilarity-1.0) > 1e-9 {
		t.Errorf("identical texts similarity = %f, want 1.0", report.MaxSimilarity)
	}
}

func TestAnswerSimilarity_Disjoint(t *testing.T) {
	report := AnswerSimilarity("alpha beta gamma", []string{"delta epsilon zeta"})
	if report.MaxSimilarity != 0 {
		t.Errorf("disjoint texts similarity = %f, want 0", report.MaxSimilarity)
	}
}

func TestAnswerSimilarity_PartialOverlap(t *testing.T) {
	report := AnswerSimilarity(
		"photosynthesis converts light into chemical energy",
		[]string{"photosynthesis converts sunlight into chemical energy stored in glucose"},
	)
	if report.MaxSimilarity <= 0 || report.MaxSimilarity >= 1 {
		t.Errorf("partial overlap similarity = %f, want in (0,1)", report.MaxSimilarity)
	}
}

func TestAnswerSimilarity_CaseAndPunctuation(t *testing.T) {
	report := AnswerSimilarity("The Answer, Is: Forty-Two!", []string{"the answer is forty two"})
	if math.Abs(report.MaxSimilarity-1.0) > 1e-9 {
		t.Errorf("normalized texts similarity = %f, want 1.0", report.MaxSimilarity)
	}
}

func TestAnswerSimilarity_EmptyInputs(t *testing.T) {
	report := AnswerSimilarity("", []string{"something"})
	if report.MaxSimilarity != 0 {
		t.Errorf("empty answer similarity = %f, want 0", report.MaxSimilarity)
	}
	report = AnswerSimilarity("something", nil)
	if len(report.Similarities) != 0 || report.MaxSimilarity != 0 {
		t.Errorf("no references produced %+v", report)
	}
}

func TestAnswerSimilarity_PicksMax(t *testing.T) {
	report := AnswerSimilarity("one two three", []string{
		"completely unrelated words here",
		"one two three",
		"one four five",
	})
	if len(report.Similarities) != 3 {
		t.Fatalf("got %d similarities, want 3", len(report.Similarities))
	}
	if math.Abs(report.MaxSimilarity-1.0) > 1e-9 {
		t.Errorf("max = %f, want 1.0", report.MaxSimilarity)
	}
	if report.Similarities[0] != 0 {
		t.Errorf("unrelated reference similarity = %f, want 0", report.Similarities[0])
	}
}
