package outlinegen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/topics"
)

func validOutlineJSON() json.RawMessage {
	return json.RawMessage(`{
		"approaches": [
			{
				"name": "isolate x",
				"steps": [
					{
						"action": "Subtract 3 from both sides",
						"reasoning": "Isolate the term with x",
						"hints": ["What undoes +3?", "Subtract 3 from both sides", "2x + 3 - 3 = 11 - 3, so 2x = 8"],
						"key_concepts": ["inverse operations"],
						"common_mistakes": ["subtracting from one side only"]
					},
					{
						"action": "Divide both sides by 2",
						"reasoning": "Solve for x",
						"hints": ["What undoes *2?", "Divide both sides by 2", "2x/2 = 8/2, so x = 4"],
						"key_concepts": ["division"],
						"common_mistakes": []
					}
				]
			},
			{
				"name": "guess and check",
				"steps": [
					{
						"action": "Try candidate values for x",
						"reasoning": "Small integer solutions can be found by testing",
						"hints": ["Try x = 1", "Try a few small values", "x = 4 gives 2(4)+3 = 11"],
						"key_concepts": ["substitution"],
						"common_mistakes": ["stopping after one wrong guess"]
					}
				]
			}
		]
	}`)
}

func TestGenerate_ValidOutline(t *testing.T) {
	stub := llm.NewStub().Reply(validOutlineJSON())
	gen := New(stub, DefaultConfig())

	outline, err := gen.Generate(context.Background(), GenerateInput{
		ProblemText: "Solve 2x + 3 = 11",
		Topic:       topics.TopicLinearEquations,
	})
	require.NoError(t, err)

	assert.Equal(t, "Solve 2x + 3 = 11", outline.ProblemText)
	require.Len(t, outline.Approaches, 2)
	assert.Equal(t, "isolate x", outline.Approaches[0].Name)
	require.Len(t, outline.Approaches[0].Steps, 2)
	assert.Equal(t, "Subtract 3 from both sides", outline.Approaches[0].Steps[0].Action)
	assert.Equal(t, "What undoes +3?", outline.Approaches[0].Steps[0].Hints[0])
	assert.Equal(t, []string{"inverse operations"}, outline.Approaches[0].Steps[0].KeyConcepts)
	assert.Equal(t, 1, outline.StepCount(1))
}

func TestGenerate_PromptIncludesTopicAndProblem(t *testing.T) {
	stub := llm.NewStub().Reply(validOutlineJSON())
	gen := New(stub, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		ProblemText: "Solve 2x + 3 = 11",
		Topic:       topics.TopicLinearEquations,
	})
	require.NoError(t, err)

	require.Equal(t, 1, stub.Calls())
	req := stub.Request(0)
	assert.Contains(t, req.Prompt, "Solve 2x + 3 = 11")
	assert.Contains(t, req.Prompt, topics.DisplayName(topics.TopicLinearEquations))
	assert.Same(t, OutlineSchema, req.Schema)
	assert.NotEmpty(t, req.System)
}

func TestGenerate_RejectsMissingHints(t *testing.T) {
	// Schema-valid shape but an empty action fails outline validation.
	raw := json.RawMessage(`{
		"approaches": [
			{
				"name": "broken",
				"steps": [
					{
						"action": "",
						"reasoning": "none",
						"hints": ["a", "b", "c"],
						"key_concepts": [],
						"common_mistakes": []
					}
				]
			}
		]
	}`)
	stub := llm.NewStub().Reply(raw)
	gen := New(stub, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{ProblemText: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrBadResponse)
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	stub := llm.NewStub().Fail(llm.Unavailable(errors.New("down")))
	gen := New(stub, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{ProblemText: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestGenerate_CapsApproaches(t *testing.T) {
	stub := llm.NewStub().Reply(validOutlineJSON())
	cfg := DefaultConfig()
	cfg.MaxApproaches = 1
	gen := New(stub, cfg)

	outline, err := gen.Generate(context.Background(), GenerateInput{ProblemText: "Solve 2x + 3 = 11"})
	require.NoError(t, err)
	assert.Len(t, outline.Approaches, 1)
	assert.Equal(t, "isolate x", outline.Approaches[0].Name)
}
