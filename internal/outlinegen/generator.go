package outlinegen

import (
	"context"

	"github.com/abhisek/tutoriz/internal/hints"
)

// Generator produces solution outlines using an LLM provider.
type Generator interface {
	// Generate decomposes a problem into a solution outline with one or
	// more approaches. Returns a validated outline or an error.
	Generate(ctx context.Context, input GenerateInput) (*hints.Outline, error)
}
