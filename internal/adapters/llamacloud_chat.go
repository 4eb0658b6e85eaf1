package adapters

import (
	openai "github.com/sashabaranov/go-openai"
)

const defaultLlamaCloudModel = "llama-3-70b-instruct"

const defaultLlamaCloudBaseURL = "https://api.llamacloud.com/v1"

// NewLlamaCloudChatAdapter builds a chat adapter against the Llama
// Cloud OpenAI-compatible endpoint.
func NewLlamaCloudChatAdapter(apiKey string, baseURL string, model string) OpenAIChatAdapter {
	if baseURL == "" {
		baseURL = defaultLlamaCloudBaseURL
	}
	if model == "" {
		model = defaultLlamaCloudModel
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return NewOpenAIChatAdapterWithConfig(config, model, "llama-cloud")
}
