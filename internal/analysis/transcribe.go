package analysis

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Transcript is the output of a speech-to-text pass over session audio.
type Transcript struct {
	Text       string  `json:"text"`
	Language   string  `json:"language,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Transcriber converts session audio into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Transcript, error)
}

// WhisperTranscriber implements Transcriber with the OpenAI
// transcription API.
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber creates a transcriber. An empty model falls
// back to whisper-1.
func NewWhisperTranscriber(apiKey, model string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperTranscriber{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (*Transcript, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
	})
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	return &Transcript{
		Text:       resp.Text,
		Language:   resp.Language,
		Confidence: 0.9,
	}, nil
}

// fallbackTranscriber wraps a Transcriber and degrades to an empty
// low-confidence transcript instead of failing. Downstream analyzers
// treat an empty transcript as a zero report, so a transcription outage
// never blocks the rest of the session analysis.
type fallbackTranscriber struct {
	inner Transcriber
}

// WithFallback makes transcription failures non-fatal.
func WithFallback(inner Transcriber) Transcriber {
	return &fallbackTranscriber{inner: inner}
}

func (f *fallbackTranscriber) Transcribe(ctx context.Context, audioPath string) (*Transcript, error) {
	out, err := f.inner.Transcribe(ctx, audioPath)
	if err != nil {
		return &Transcript{Text: "", Confidence: 0.1}, nil
	}
	return out, nil
}
