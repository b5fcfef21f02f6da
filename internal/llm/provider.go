package llm

import (
	"context"
	"encoding/json"
)

// Provider answers single-turn completion requests. All LLM use in
// Tutoriz is one system prompt, one user prompt, one structured reply.
type Provider interface {
	// Complete sends one request and returns the model's reply. When
	// req.Schema is set the reply content is schema-checked JSON;
	// failures come back classified (see errors.go).
	Complete(ctx context.Context, req Request) (*Result, error)

	// Name identifies the backing provider, e.g. "anthropic".
	Name() string
}

// Request is one completion request.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when set, makes the provider request structured output
	// and check the reply against it before returning.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0 to 1.0.
	// Zero means deterministic.
	Temperature float64
}

// Result is a successful completion.
type Result struct {
	// Content is the reply. Schema-conforming JSON when the request
	// carried a schema, otherwise the raw text.
	Content json.RawMessage

	// Model is the concrete model that served the request.
	Model string

	Usage Usage
}

// Usage is the token spend of one call.
type Usage struct {
	Prompt     int
	Completion int
}

// Total returns the combined token count.
func (u Usage) Total() int {
	return u.Prompt + u.Completion
}

// aliasOrLiteral resolves a friendly model name through an alias table,
// passing unknown names through so exact model IDs keep working.
func aliasOrLiteral(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
