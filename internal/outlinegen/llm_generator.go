package outlinegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/tutoriz/internal/hints"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/topics"
)

// GenerateInput is everything the generator needs for one problem.
type GenerateInput struct {
	// ProblemText is the problem to decompose.
	ProblemText string

	// Topic, when known, steers the decomposition.
	Topic topics.Topic

	// StudentContext is optional free-text background (recent errors,
	// preferred methods) included in the prompt.
	StudentContext string
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// outlineOutput is the raw LLM response before conversion.
type outlineOutput struct {
	Approaches []struct {
		Name  string `json:"name"`
		Steps []struct {
			Action         string   `json:"action"`
			Reasoning      string   `json:"reasoning"`
			Hints          []string `json:"hints"`
			KeyConcepts    []string `json:"key_concepts"`
			CommonMistakes []string `json:"common_mistakes"`
		} `json:"steps"`
	} `json:"approaches"`
}

// Generate produces a solution outline for the given problem.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*hints.Outline, error) {
	ctx = llm.WithPurpose(ctx, "outline-gen")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(input),
		Schema:      OutlineSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	res, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw outlineOutput
	if err := json.Unmarshal(res.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	outline := convertOutline(input.ProblemText, raw, g.config.MaxApproaches)

	if err := outline.Validate(); err != nil {
		return nil, llm.BadResponse(res.Content, fmt.Errorf("rejected outline: %w", err))
	}

	return outline, nil
}

func convertOutline(problemText string, raw outlineOutput, maxApproaches int) *hints.Outline {
	outline := &hints.Outline{ProblemText: problemText}

	approaches := raw.Approaches
	if maxApproaches > 0 && len(approaches) > maxApproaches {
		approaches = approaches[:maxApproaches]
	}

	for _, a := range approaches {
		approach := hints.Approach{Name: a.Name}
		for _, s := range a.Steps {
			step := hints.Step{
				Action:         s.Action,
				Reasoning:      s.Reasoning,
				KeyConcepts:    s.KeyConcepts,
				CommonMistakes: s.CommonMistakes,
			}
			copy(step.Hints[:], s.Hints)
			approach.Steps = append(approach.Steps, step)
		}
		outline.Approaches = append(outline.Approaches, approach)
	}

	return outline
}
