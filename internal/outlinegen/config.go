package outlinegen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Outlines are
	// larger than single questions, so the default is generous.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxApproaches caps how many solution approaches are kept from
	// the response. Zero means keep all.
	MaxApproaches int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     2048,
		Temperature:   0.3,
		MaxApproaches: 3,
	}
}
