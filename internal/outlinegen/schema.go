package outlinegen

import (
	"github.com/abhisek/tutoriz/internal/hints"
	"github.com/abhisek/tutoriz/internal/llm"
)

// OutlineSchema defines the JSON schema for LLM outline generation responses.
var OutlineSchema = &llm.Schema{
	Name:        "problem-outline",
	Description: "A decomposition of one math problem into solution approaches with per-step hints",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"approaches": map[string]any{
				"type":        "array",
				"minItems":    1,
				"description": "Valid solution approaches, most conventional first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Short label for the approach, e.g. \"factoring\"",
						},
						"steps": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"action": map[string]any{
										"type":        "string",
										"description": "What the student does in this step",
									},
									"reasoning": map[string]any{
										"type":        "string",
										"description": "Why this step is taken",
									},
									"hints": map[string]any{
										"type":        "array",
										"minItems":    hints.HintLevels,
										"maxItems":    hints.HintLevels,
										"items":       map[string]any{"type": "string"},
										"description": "Three hints of increasing directness",
									},
									"key_concepts": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
									"common_mistakes": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
								},
								"required":             []any{"action", "reasoning", "hints", "key_concepts", "common_mistakes"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"name", "steps"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"approaches"},
		"additionalProperties": false,
	},
}
