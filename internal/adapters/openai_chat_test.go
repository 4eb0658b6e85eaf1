package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbti-chat/internal/ports"
)

// fakeCompletionServer mimics the chat completions endpoint, optionally
// rate-limiting the first failures requests.
func fakeCompletionServer(t *testing.T, reply string, failures int) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= failures {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
			return
		}

		var request openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Len(t, request.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, request.Messages[0].Role)
		assert.Equal(t, openai.ChatMessageRoleUser, request.Messages[1].Role)

		response := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func testAdapter(serverURL string) OpenAIChatAdapter {
	config := openai.DefaultConfig("test-key")
	config.BaseURL = serverURL + "/v1"
	adapter := NewOpenAIChatAdapterWithConfig(config, "gpt-4", "openai")
	adapter.retryDelay = time.Millisecond
	return adapter
}

func TestGenerateReturnsTrimmedReply(t *testing.T) {
	server, calls := fakeCompletionServer(t, "  A thoughtful answer.\n", 0)
	adapter := testAdapter(server.URL)

	text, err := adapter.Generate(context.Background(), ports.GenerateRequest{
		SystemPrompt: "You are INTJ.",
		Prompt:       "What do you value?",
		Temperature:  0.7,
		MaxTokens:    300,
	})
	require.NoError(t, err)
	assert.Equal(t, "A thoughtful answer.", text)
	assert.Equal(t, 1, *calls)
}

func TestGenerateRetriesOnRateLimit(t *testing.T) {
	server, calls := fakeCompletionServer(t, "Recovered.", 2)
	adapter := testAdapter(server.URL)

	text, err := adapter.Generate(context.Background(), ports.GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Recovered.", text)
	assert.Equal(t, 3, *calls)
}

func TestGenerateGivesUpAfterRetryBudget(t *testing.T) {
	server, calls := fakeCompletionServer(t, "never seen", 10)
	adapter := testAdapter(server.URL)

	_, err := adapter.Generate(context.Background(), ports.GenerateRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Equal(t, 3, *calls)
}

func TestGenerateDoesNotRetryOtherErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	t.Cleanup(server.Close)
	adapter := testAdapter(server.URL)

	_, err := adapter.Generate(context.Background(), ports.GenerateRequest{Prompt: "hi"})
	require.Error(t, err)
}

func TestLlamaCloudAdapterDefaults(t *testing.T) {
	adapter := NewLlamaCloudChatAdapter("key", "", "")
	assert.Equal(t, "llama-cloud", adapter.Name())
	assert.Equal(t, defaultLlamaCloudModel, adapter.model)
}
