// Package adapters implements the outbound ports against real backends:
// the OpenAI and Llama Cloud chat APIs, the Weaviate vector store, and
// the local filesystem for manifests and seed knowledge.
package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"mbti-chat/internal/ports"
)

const defaultOpenAIModel = "gpt-3.5-turbo"

// chatRetryAttempts bounds how often a rate-limited request is retried.
const chatRetryAttempts = 3

const chatRetryInitialDelay = 2 * time.Second

// OpenAIChatAdapter answers chat completions through the OpenAI API.
// Rate-limited requests are retried with exponential backoff.
type OpenAIChatAdapter struct {
	client     *openai.Client
	model      string
	name       string
	retryDelay time.Duration
}

func NewOpenAIChatAdapter(apiKey string, model string) OpenAIChatAdapter {
	if model == "" {
		model = defaultOpenAIModel
	}
	return OpenAIChatAdapter{
		client:     openai.NewClient(apiKey),
		model:      model,
		name:       "openai",
		retryDelay: chatRetryInitialDelay,
	}
}

// NewOpenAIChatAdapterWithConfig builds an adapter against a custom
// endpoint. Used for OpenAI-compatible backends and in tests.
func NewOpenAIChatAdapterWithConfig(config openai.ClientConfig, model string, name string) OpenAIChatAdapter {
	return OpenAIChatAdapter{
		client:     openai.NewClientWithConfig(config),
		model:      model,
		name:       name,
		retryDelay: chatRetryInitialDelay,
	}
}

func (a OpenAIChatAdapter) Name() string { return a.name }

func (a OpenAIChatAdapter) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	}

	operation := func() (string, error) {
		response, err := a.client.CreateChatCompletion(ctx, request)
		if err != nil {
			if isRateLimited(err) {
				log.Warn().Str("provider", a.name).Msg("rate limited, backing off")
				return "", err
			}
			return "", backoff.Permanent(err)
		}
		if len(response.Choices) == 0 {
			return "", backoff.Permanent(errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("chat completion returned no choices"))
		}
		return strings.TrimSpace(response.Choices[0].Message.Content), nil
	}

	policy := backoff.WithContext(a.retryPolicy(), ctx)
	text, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("chat completion failed").
			WithCause(err)
	}
	return text, nil
}

// retryPolicy retries at most chatRetryAttempts times, doubling the
// delay between attempts.
func (a OpenAIChatAdapter) retryPolicy() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = a.retryDelay
	policy.RandomizationFactor = 0
	policy.Multiplier = 2
	return backoff.WithMaxRetries(policy, chatRetryAttempts-1)
}

func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429
	}
	return false
}
