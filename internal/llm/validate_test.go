package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func gradeSchema() *Schema {
	return &Schema{
		Name:        "test-grade",
		Description: "A minimal grade payload",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"isCorrect": map[string]any{"type": "boolean"},
				"score":     map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
				"severity":  map[string]any{"type": "string", "enum": []any{"error", "nit"}},
			},
			"required": []any{"isCorrect", "score"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"isCorrect":true,"score":4,"severity":"nit"}`)
	if err := validateResponse(gradeSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"isCorrect":false,"score":2}`)
	if err := validateResponse(gradeSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"isCorrect":true}`)
	err := validateResponse(gradeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"isCorrect":true,"score":"four"}`)
	err := validateResponse(gradeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"isCorrect":true,"score":9}`)
	if err := validateResponse(gradeSchema(), raw); err == nil {
		t.Fatal("expected error for out-of-range score")
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"isCorrect":true,"score":3,"severity":"fatal"}`)
	err := validateResponse(gradeSchema(), raw)
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
	err := validateResponse(gradeSchema(), raw)
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
	if err := validateResponse(gradeSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedCriteria(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested-criteria",
		Description: "Nested criteria payload",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"criteria": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"criterionId": map[string]any{"type": "string"},
							"status":      map[string]any{"type": "string"},
						},
						"required": []any{"criterionId", "status"},
					},
				},
			},
			"required": []any{"criteria"},
		},
	}

	valid := json.RawMessage(`{"criteria":[{"criterionId":"thesis","status":"Yes"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"criteria":[{"criterionId":"thesis"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for criterion missing status")
	}
}
