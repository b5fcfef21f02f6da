package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func newGemini(ctx context.Context, cfg GeminiConfig) (*geminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiProvider{
		client: client,
		model:  aliasOrLiteral(cfg.Model, geminiAliases),
	}, nil
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func (p *geminiProvider) Complete(ctx context.Context, req Request) (*Result, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}},
	}

	out, err := p.client.Models.GenerateContent(ctx, p.model, contents, p.genConfig(req))
	if err != nil {
		return nil, geminiFailure(err)
	}

	raw := json.RawMessage(out.Text())
	if hitTokenLimit(out) {
		return nil, Truncated(raw)
	}
	if err := req.Schema.Check(raw); err != nil {
		return nil, err
	}

	res := &Result{Content: raw, Model: p.model}
	if out.UsageMetadata != nil {
		res.Usage = Usage{
			Prompt:     int(out.UsageMetadata.PromptTokenCount),
			Completion: int(out.UsageMetadata.CandidatesTokenCount),
		}
	}
	return res, nil
}

func (p *geminiProvider) genConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGeminiSchema(req.Schema.Definition)
	}
	return cfg
}

func hitTokenLimit(out *genai.GenerateContentResponse) bool {
	return len(out.Candidates) > 0 && out.Candidates[0].FinishReason == "MAX_TOKENS"
}

// toGeminiSchema translates a JSON Schema map into the SDK's schema
// type. Gemini has no structured-output equivalent of
// additionalProperties, so that constraint is enforced only by Check.
func toGeminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		s.Type = geminiType(t)
	}
	if d, ok := def["description"].(string); ok {
		s.Description = d
	}

	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if sub, ok := v.(map[string]any); ok {
				s.Properties[name] = toGeminiSchema(sub)
			}
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = toGeminiSchema(items)
	}

	for _, v := range asAnySlice(def["required"]) {
		if name, ok := v.(string); ok {
			s.Required = append(s.Required, name)
		}
	}
	for _, v := range asAnySlice(def["enum"]) {
		if label, ok := v.(string); ok {
			s.Enum = append(s.Enum, label)
		}
	}

	if n, ok := asInt64(def["minItems"]); ok {
		s.MinItems = &n
	}
	if n, ok := asInt64(def["maxItems"]); ok {
		s.MaxItems = &n
	}

	return s
}

func geminiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func asAnySlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// asInt64 accepts the numeric types a schema literal or a JSON
// round-trip can produce.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func geminiFailure(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return RateLimited(0, err)
	}
	return Unavailable(err)
}
