package ports

import "context"

// GenerateRequest carries one chat completion request to a provider.
type GenerateRequest struct {
	SystemPrompt string
	Prompt       string
	Temperature  float32
	MaxTokens    int
}

// ChatModelPort is implemented by LLM provider adapters.
type ChatModelPort interface {
	// Generate returns the model's reply text.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// Name identifies the provider in logs and diagnostics.
	Name() string
}
