package openai

import "context"

// IOpenAI is a client for any OpenAI-compatible chat completions endpoint.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	CreateChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Model returns the model requests default to
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
