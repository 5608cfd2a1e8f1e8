package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/vigil/internal/llm"
)

func TestClassify_LLMVerdict(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"flagged": true,
			"summary": "Candidate asked a second person for the answer",
			"suspicious_phrases": ["what is the answer to number four"],
			"confidence": 0.85
		}`),
	})
	c := NewTranscriptClassifier(provider, DefaultClassifierConfig())

	verdict, err := c.Classify(context.Background(), "hey what is the answer to number four")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !verdict.Flagged {
		t.Error("verdict not flagged")
	}
	if verdict.ClassifierName != "llm" {
		t.Errorf("classifier = %q, want llm", verdict.ClassifierName)
	}
	if verdict.Confidence != 0.85 {
		t.Errorf("confidence = %f, want 0.85", verdict.Confidence)
	}
	if provider.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", provider.CallCount())
	}
	if provider.Calls[0].Schema != TranscriptSchema {
		t.Error("request missing transcript schema")
	}
}

func TestClassify_ProviderErrorFallsBackToRules(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	})
	c := NewTranscriptClassifier(provider, DefaultClassifierConfig())

	verdict, err := c.Classify(context.Background(), "please give me the answer to question two")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if verdict.ClassifierName != "rules" {
		t.Errorf("classifier = %q, want rules", verdict.ClassifierName)
	}
	if len(verdict.SuspiciousPhrases) == 0 {
		t.Error("rule-based verdict has no phrases for a help-seeking transcript")
	}
}

func TestClassify_NilProviderUsesRules(t *testing.T) {
	c := NewTranscriptClassifier(nil, DefaultClassifierConfig())

	verdict, err := c.Classify(context.Background(), "the answer is option c, just write it")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if verdict.ClassifierName != "rules" {
		t.Errorf("classifier = %q, want rules", verdict.ClassifierName)
	}
	if !verdict.Flagged {
		t.Errorf("answer-receiving transcript not flagged: %+v", verdict)
	}
}

func TestClassify_EmptyTranscript(t *testing.T) {
	c := NewTranscriptClassifier(nil, DefaultClassifierConfig())

	verdict, err := c.Classify(context.Background(), "")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if verdict.Flagged {
		t.Error("empty transcript flagged")
	}
	if verdict.Confidence != 0.1 {
		t.Errorf("confidence = %f, want 0.1", verdict.Confidence)
	}
}

func TestClassify_CleanTranscriptNotFlagged(t *testing.T) {
	c := NewTranscriptClassifier(nil, DefaultClassifierConfig())

	verdict, err := c.Classify(context.Background(), "reading through the instructions quietly")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if verdict.Flagged {
		t.Errorf("clean transcript flagged: %+v", verdict)
	}
}

func TestClassify_MalformedLLMResponseFallsBack(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	c := NewTranscriptClassifier(provider, DefaultClassifierConfig())

	verdict, err := c.Classify(context.Background(), "can you help me here")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if verdict.ClassifierName != "rules" {
		t.Errorf("classifier = %q, want rules after parse failure", verdict.ClassifierName)
	}
}

type stubTranscriber struct {
	out *Transcript
	err error
}

func (s *stubTranscriber) Transcribe(context.Context, string) (*Transcript, error) {
	return s.out, s.err
}

func TestWithFallback_PassThrough(t *testing.T) {
	want := &Transcript{Text: "hello", Confidence: 0.9}
	tr := WithFallback(&stubTranscriber{out: want})

	got, err := tr.Transcribe(context.Background(), "audio.wav")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want pass-through", got)
	}
}

func TestWithFallback_DegradesOnError(t *testing.T) {
	tr := WithFallback(&stubTranscriber{err: fmt.Errorf("network down")})

	got, err := tr.Transcribe(context.Background(), "audio.wav")
	if err != nil {
		t.Fatalf("fallback returned error: %v", err)
	}
	if got.Text != "" || got.Confidence != 0.1 {
		t.Errorf("fallback transcript = %+v, want empty text with confidence 0.1", got)
	}
}
