package topics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tutoriz/internal/llm"
)

// classifySystemPrompt instructs the model to pick exactly one taxonomy label.
const classifySystemPrompt = `You classify math problems into a fixed taxonomy.
Pick the single most specific topic for the problem. Prefer the more specific
label when two apply (e.g. a quadratic inequality is an inequality problem).`

// LLMClassifier implements SemanticClassifier on top of an llm.Provider,
// using structured output constrained to the taxonomy.
type LLMClassifier struct {
	provider llm.Provider
}

// NewLLMClassifier creates a semantic classifier backed by the given provider.
func NewLLMClassifier(p llm.Provider) *LLMClassifier {
	return &LLMClassifier{provider: p}
}

// Topic asks the model for a topic label. Returns an error on any
// provider failure or an out-of-taxonomy label; the caller is expected
// to fall back to keyword classification.
func (l *LLMClassifier) Topic(ctx context.Context, problemText string) (Topic, error) {
	res, err := l.provider.Complete(ctx, llm.Request{
		System:    classifySystemPrompt,
		Prompt:    fmt.Sprintf("Classify this problem:\n\n%s", problemText),
		Schema:    topicLabelSchema,
		MaxTokens: 128,
	})
	if err != nil {
		return TopicUnknown, fmt.Errorf("semantic classify: %w", err)
	}

	var out struct {
		Topic string `json:"topic"`
	}
	if err := json.Unmarshal(res.Content, &out); err != nil {
		return TopicUnknown, fmt.Errorf("parse classification: %w", err)
	}

	t := Topic(strings.TrimSpace(out.Topic))
	if !Known(t) || t == TopicUnknown {
		return TopicUnknown, fmt.Errorf("unknown topic label %q", out.Topic)
	}
	return t, nil
}

// topicLabelSchema constrains the response to one taxonomy label.
// Shared so the definition is compiled once.
var topicLabelSchema = topicSchema()

func topicSchema() *llm.Schema {
	labels := make([]any, 0, len(All()))
	for _, t := range All() {
		labels = append(labels, string(t))
	}
	return &llm.Schema{
		Name:        "topic-label",
		Description: "A single topic label from the practice taxonomy",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{
					"type": "string",
					"enum": labels,
				},
			},
			"required":             []any{"topic"},
			"additionalProperties": false,
		},
	}
}
