package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// verdictSchema mirrors the transcript-classification response shape the
// analysis layer requests from providers.
func verdictSchema() *Schema {
	return &Schema{
		Name:        "transcript-verdict",
		Description: "Assessment of a proctored session transcript",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"flagged":    map[string]any{"type": "boolean"},
				"summary":    map[string]any{"type": "string"},
				"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"level":      map[string]any{"type": "string", "enum": []any{"low", "moderate", "high"}},
			},
			"required": []any{"flagged", "summary", "confidence"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"flagged":true,"summary":"Candidate was read an answer aloud","confidence":0.85,"level":"high"}`)
	err := validateResponse(verdictSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"flagged":false,"summary":"Nothing suspicious","confidence":0.2}`)
	err := validateResponse(verdictSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Missing its verdict"}`)
	err := validateResponse(verdictSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"flagged":true,"summary":"Typed confidence","confidence":"high"}`)
	err := validateResponse(verdictSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"flagged":true,"summary":"Bad level","confidence":0.9,"level":"catastrophic"}`)
	err := validateResponse(verdictSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(verdictSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(verdictSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-flag-detail",
		Description: "Verdict with nested evidence",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"summary": map[string]any{"type": "string"},
					},
					"required": []any{"summary"},
				},
				"phrase_offsets": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"verdict", "phrase_offsets"},
		},
	}

	valid := json.RawMessage(`{"verdict":{"summary":"Two voices in the recording"},"phrase_offsets":[118,221,340]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"verdict":{"summary":"Two voices in the recording"},"phrase_offsets":["not","ints"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
