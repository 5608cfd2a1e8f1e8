package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flagged":    map[string]any{"type": "boolean"},
			"summary":    map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number"},
			"level":      map[string]any{"type": "string", "enum": []any{"low", "moderate", "high"}},
			"suspicious_phrases": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"flagged", "summary", "confidence"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["flagged"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for flagged, got %s", schema.Properties["flagged"].Type)
	}
	if schema.Properties["confidence"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["level"].Enum))
	}
	if schema.Properties["suspicious_phrases"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for suspicious_phrases, got %s", schema.Properties["suspicious_phrases"].Type)
	}
	if schema.Properties["suspicious_phrases"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for suspicious_phrases items, got %s", schema.Properties["suspicious_phrases"].Items.Type)
	}
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}
}
