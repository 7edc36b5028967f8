package driven

import "context"

// LLMService provides language model text generation.
//
// Implementations may include:
//   - Ollama (local models)
//   - OpenAI (GPT-4o family)
type LLMService interface {
	// Generate produces a single synchronous completion from a prompt.
	// No streaming; the call blocks until the full response or failure.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
