package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test_scores",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "integer"},
					"label": map[string]any{"type": "string"},
				},
				"required": []any{"id", "label"},
			},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`[{"id": 1, "label": "ok"}]`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{not json`))
	var ierr *ErrInvalidResponse
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	raw := json.RawMessage(`[{"id": "one", "label": "ok"}]`)
	err := validateResponse(testSchema(), raw)
	var ierr *ErrInvalidResponse
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema must skip validation: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := testSchema()
	raw := json.RawMessage(`[{"id": 1, "label": "a"}]`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Error("compiled schema not cached")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
