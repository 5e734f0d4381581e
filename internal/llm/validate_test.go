package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-trivia",
		Description: "A trivia question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"correct": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
			},
			"required":             []any{"question", "options", "correct"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", triviaJSON, false},
		{"missing field", `{"question":"q","options":["a","b","c","d"]}`, true},
		{"too few options", `{"question":"q","options":["a"],"correct":0}`, true},
		{"index out of range", `{"question":"q","options":["a","b","c","d"],"correct":4}`, true},
		{"wrong type", `{"question":1,"options":["a","b","c","d"],"correct":0}`, true},
		{"extra field", `{"question":"q","options":["a","b","c","d"],"correct":0,"x":1}`, true},
		{"malformed", `{"question":`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}
