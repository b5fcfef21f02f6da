package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// planSchema mirrors the shape of a session-plan reply: an ordered
// list of topic slots with a reason each.
func planSchema() *Schema {
	return &Schema{
		Name:        "session-plan",
		Description: "Ordered practice slots for one session",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"slots": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"topic": map[string]any{"type": "string"},
							"reason": map[string]any{
								"type": "string",
								"enum": []any{"due", "weak", "variety"},
							},
						},
						"required":             []any{"topic", "reason"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"slots"},
			"additionalProperties": false,
		},
	}
}

func TestSchemaCheck_ConformingReply(t *testing.T) {
	raw := json.RawMessage(`{"slots":[{"topic":"fractions","reason":"due"}]}`)
	if err := planSchema().Check(raw); err != nil {
		t.Fatalf("conforming reply rejected: %v", err)
	}
}

func TestSchemaCheck_MalformedJSON(t *testing.T) {
	err := planSchema().Check(json.RawMessage(`{"slots": [`))
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
}

func TestSchemaCheck_OutOfEnumValue(t *testing.T) {
	raw := json.RawMessage(`{"slots":[{"topic":"fractions","reason":"bored"}]}`)
	err := planSchema().Check(raw)
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
}

func TestSchemaCheck_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"slots":[{"topic":"fractions"}]}`)
	if err := planSchema().Check(raw); !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
}

func TestSchemaCheck_ExtraProperty(t *testing.T) {
	raw := json.RawMessage(`{"slots":[{"topic":"fractions","reason":"due"}],"notes":"hi"}`)
	if err := planSchema().Check(raw); !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
}

func TestSchemaCheck_EmptySlots(t *testing.T) {
	raw := json.RawMessage(`{"slots":[]}`)
	if err := planSchema().Check(raw); !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
}

func TestSchemaCheck_RejectionCarriesContent(t *testing.T) {
	raw := json.RawMessage(`{"slots":[{"topic":"fractions","reason":"bored"}]}`)
	err := planSchema().Check(raw)

	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T, want *CallError", err)
	}
	if string(ce.Content) != string(raw) {
		t.Errorf("rejected content not carried: %s", ce.Content)
	}
}

func TestSchemaCheck_NilSchemaAcceptsAnything(t *testing.T) {
	var s *Schema
	if err := s.Check(json.RawMessage(`this is not even JSON`)); err != nil {
		t.Fatalf("nil schema must accept anything, got: %v", err)
	}
}

func TestSchemaCheck_CompiledOnce(t *testing.T) {
	s := planSchema()
	raw := json.RawMessage(`{"slots":[{"topic":"fractions","reason":"weak"}]}`)
	for i := 0; i < 3; i++ {
		if err := s.Check(raw); err != nil {
			t.Fatalf("check %d: %v", i, err)
		}
	}
	if s.compiled == nil {
		t.Fatal("expected a cached compiled schema")
	}
}

func TestSchemaCheck_BadDefinitionStaysBroken(t *testing.T) {
	s := &Schema{
		Name:       "broken",
		Definition: map[string]any{"type": 42},
	}
	raw := json.RawMessage(`{}`)
	for i := 0; i < 2; i++ {
		if err := s.Check(raw); !errors.Is(err, ErrBadResponse) {
			t.Fatalf("check %d: err = %v, want ErrBadResponse", i, err)
		}
	}
}
