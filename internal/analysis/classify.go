package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/vigil/internal/llm"
)

// ClassifierConfig holds configuration for the LLM transcript
// classifier.
type ClassifierConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultClassifierConfig returns sensible defaults.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// TranscriptVerdict is the classification of a session transcript.
type TranscriptVerdict struct {
	Flagged           bool     `json:"flagged"`
	Summary           string   `json:"summary"`
	SuspiciousPhrases []string `json:"suspicious_phrases"`
	Confidence        float64  `json:"confidence"`
	ClassifierName    string   `json:"classifier_name"`
}

// TranscriptSchema defines the JSON schema for LLM transcript
// classification responses.
var TranscriptSchema = &llm.Schema{
	Name:        "transcript-classification",
	Description: "Assessment of whether a proctored session transcript shows evidence of outside assistance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flagged": map[string]any{
				"type":        "boolean",
				"description": "True when the transcript shows evidence of outside assistance",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "One-sentence summary of the finding",
			},
			"suspicious_phrases": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Verbatim fragments from the transcript supporting the assessment",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Confidence in the assessment",
			},
		},
		"required":             []string{"flagged", "summary", "suspicious_phrases", "confidence"},
		"additionalProperties": false,
	},
}

// TranscriptClassifier performs LLM-based transcript assessment with a
// rule-based fallback.
type TranscriptClassifier struct {
	provider llm.Provider
	cfg      ClassifierConfig
}

// NewTranscriptClassifier creates a classifier. A nil provider is
// allowed: Classify then always takes the rule-based path.
func NewTranscriptClassifier(provider llm.Provider, cfg ClassifierConfig) *TranscriptClassifier {
	return &TranscriptClassifier{provider: provider, cfg: cfg}
}

// Classify assesses a transcript. The LLM path is tried first; any
// provider error degrades to the phrase-dictionary rules so a verdict
// is always produced.
func (c *TranscriptClassifier) Classify(ctx context.Context, transcript string) (*TranscriptVerdict, error) {
	if transcript == "" {
		return &TranscriptVerdict{
			Summary:        "Empty transcript, nothing to assess",
			Confidence:     0.1,
			ClassifierName: "rules",
		}, nil
	}

	if c.provider != nil {
		verdict, err := c.classifyLLM(ctx, transcript)
		if err == nil {
			return verdict, nil
		}
	}
	return ruleBasedVerdict(transcript), nil
}

func (c *TranscriptClassifier) classifyLLM(ctx context.Context, transcript string) (*TranscriptVerdict, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTranscriptClassification)

	userMsg, err := buildTranscriptMessage(transcript)
	if err != nil {
		return nil, fmt.Errorf("build transcript prompt: %w", err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: transcriptSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      TranscriptSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM transcript classification failed: %w", err)
	}

	var raw struct {
		Flagged           bool     `json:"flagged"`
		Summary           string   `json:"summary"`
		SuspiciousPhrases []string `json:"suspicious_phrases"`
		Confidence        float64  `json:"confidence"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}

	return &TranscriptVerdict{
		Flagged:           raw.Flagged,
		Summary:           raw.Summary,
		SuspiciousPhrases: raw.SuspiciousPhrases,
		Confidence:        raw.Confidence,
		ClassifierName:    "llm",
	}, nil
}

// ruleBasedVerdict maps the phrase-dictionary report into a verdict.
// Confidence is the content risk score, discounted because the rules
// only see literal matches.
func ruleBasedVerdict(transcript string) *TranscriptVerdict {
	report := AnalyzeContent(transcript)

	phrases := make([]string, 0, len(report.Matches))
	for _, m := range report.Matches {
		phrases = append(phrases, m.Phrase)
	}

	verdict := &TranscriptVerdict{
		Flagged:           report.RiskScore >= 0.5,
		SuspiciousPhrases: phrases,
		Confidence:        report.RiskScore * 0.8,
		ClassifierName:    "rules",
	}
	switch {
	case report.AnswerReceivingCount > 0:
		verdict.Summary = "Transcript contains answer-receiving phrases"
	case report.HelpSeekingCount > 0:
		verdict.Summary = "Transcript contains help-seeking phrases"
	case report.ExternalDiscussion:
		verdict.Summary = "Transcript suggests discussion with a third party"
	default:
		verdict.Summary = "No suspicious phrases found"
	}
	return verdict
}

const transcriptSystemPrompt = `You are reviewing the audio transcript of a remotely proctored assessment. Your job is to determine whether the transcript shows evidence that the candidate sought or received outside assistance.

Instructions:
- Flag the transcript only when a fragment clearly indicates seeking help, receiving an answer, or conversing with another person about the assessment content.
- Reading a question aloud to oneself is NOT evidence on its own.
- Quote supporting fragments verbatim in suspicious_phrases. Return an empty array when nothing is suspicious.
- Provide a confidence score (0.0-1.0) for your assessment.
- Keep the summary to one sentence.`

var transcriptUserTemplate = template.Must(template.New("transcript").Parse(`Transcript of the session audio:

{{.}}`))

func buildTranscriptMessage(transcript string) (string, error) {
	var buf bytes.Buffer
	if err := transcriptUserTemplate.Execute(&buf, transcript); err != nil {
		return "", err
	}
	return buf.String(), nil
}
