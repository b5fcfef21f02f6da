package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and (when a recorder is given) call logging middleware.
func NewProvider(ctx context.Context, cfg Config, rec CallRecorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = newAnthropic(cfg.Anthropic)
	case "openai":
		base, err = newOpenAI(cfg.OpenAI)
	case "gemini":
		base, err = newGemini(ctx, cfg.Gemini)
	case "stub":
		return NewStub(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller, then retry, then logging, then base.
	if rec != nil {
		base = WithLogging(base, rec)
	}
	return WithRetry(base, cfg.Retry), nil
}
