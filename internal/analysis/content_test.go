package analysis

import (
	"math"
	"testing"
)

func TestAnalyzeContent_Empty(t *testing.T) {
	for _, transcript := range []string{"", "   ", "\n\t"} {
		report := AnalyzeContent(transcript)
		if report.RiskScore != 0 {
			t.Errorf("empty transcript %q risk = %f, want 0", transcript, report.RiskScore)
		}
		if report.HelpSeekingCount != 0 || report.AnswerReceivingCount != 0 {
			t.Errorf("empty transcript %q produced counts: %+v", transcript, report)
		}
	}
}

func TestAnalyzeContent_Clean(t *testing.T) {
	report := AnalyzeContent("the mitochondria produces energy through cellular respiration")
	if report.RiskScore != 0 {
		t.Errorf("clean transcript risk = %f, want 0", report.RiskScore)
	}
	if len(report.Matches) != 0 {
		t.Errorf("clean transcript matched: %+v", report.Matches)
	}
}

func TestAnalyzeContent_HelpSeekingPhrase(t *testing.T) {
	report := AnalyzeContent("hey can you help with question three")
	if report.HelpSeekingCount == 0 {
		t.Fatal("help-seeking phrase not counted")
	}
	if report.RiskScore < 0.4 {
		t.Errorf("risk = %f, want >= 0.4", report.RiskScore)
	}
	found := false
	for _, m := range report.Matches {
		if m.Phrase == "can you help" && m.Kind == "help_seeking" {
			found = true
		}
	}
	if !found {
		t.Errorf("matches missing literal phrase: %+v", report.Matches)
	}
}

func TestAnalyzeContent_HindiPhrase(t *testing.T) {
	report := AnalyzeContent("जवाब क्या है इस सवाल का")
	if report.HelpSeekingCount == 0 {
		t.Error("Hindi help-seeking phrase not counted")
	}
}

func TestAnalyzeContent_AnswerReceiving(t *testing.T) {
	report := AnalyzeContent("listen carefully the answer is option b")
	if report.AnswerReceivingCount == 0 {
		t.Fatal("answer-receiving pattern not counted")
	}
	if report.RiskScore < 0.5 {
		t.Errorf("risk = %f, want >= 0.5", report.RiskScore)
	}
}

func TestAnalyzeContent_ExternalDiscussion(t *testing.T) {
	report := AnalyzeContent("my friend said the formula uses the second derivative")
	if !report.ExternalDiscussion {
		t.Error("third-party speech not detected")
	}
}

func TestAnalyzeContent_QuestionReading(t *testing.T) {
	report := AnalyzeContent("What is the capital of France? It is on page two")
	if !report.QuestionReading {
		t.Error("question reading not detected")
	}
}

func TestAnalyzeContent_RiskCapped(t *testing.T) {
	// Every signal class present at once must still cap at 1.0.
	transcript := "can you help, the answer is option b, my friend said so. What is it? it is b"
	report := AnalyzeContent(transcript)
	if report.RiskScore > 1.0 {
		t.Errorf("risk = %f, exceeds cap", report.RiskScore)
	}
	if math.Abs(report.RiskScore-1.0) > 1e-9 {
		t.Errorf("risk = %f, want 1.0 with all signals present", report.RiskScore)
	}
}

func TestAnalyzeContent_CaseInsensitive(t *testing.T) {
	report := AnalyzeContent("GIVE ME THE ANSWER right now")
	if report.HelpSeekingCount == 0 {
		t.Error("uppercase phrase not matched")
	}
}
