package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

type anthropicProvider struct {
	client *anthropic.Client
	model  string
}

func newAnthropic(cfg AnthropicConfig) (*anthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &anthropicProvider{
		client: &client,
		model:  aliasOrLiteral(cfg.Model, anthropicAliases),
	}, nil
}

func (p *anthropicProvider) Name() string {
	return "anthropic"
}

func (p *anthropicProvider) Complete(ctx context.Context, req Request) (*Result, error) {
	msg, err := p.client.Messages.New(ctx, p.params(req))
	if err != nil {
		return nil, anthropicFailure(err)
	}

	raw, ok := firstTextBlock(msg)
	if !ok {
		return nil, BadResponse(nil, errors.New("reply carried no text block"))
	}
	if msg.StopReason == "max_tokens" {
		return nil, Truncated(raw)
	}
	if err := req.Schema.Check(raw); err != nil {
		return nil, err
	}

	return &Result{
		Content: raw,
		Model:   string(msg.Model),
		Usage: Usage{
			Prompt:     int(msg.Usage.InputTokens),
			Completion: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func (p *anthropicProvider) params(req Request) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(req.Prompt),
				},
			},
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{
				Schema: req.Schema.Definition,
			},
		}
	}
	return params
}

func firstTextBlock(msg *anthropic.Message) (json.RawMessage, bool) {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return json.RawMessage(block.Text), true
		}
	}
	return nil, false
}

func anthropicFailure(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return RateLimited(retryAfterHint(apiErr.Response), err)
	}
	// Everything else, 5xx included, is an outage from our side.
	return Unavailable(err)
}

// retryAfterHint parses a Retry-After response header given in seconds.
func retryAfterHint(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
