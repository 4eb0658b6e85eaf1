// Package app wires the ports, policies, and core orchestration into
// the operations the CLI exposes.
package app

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"mbti-chat/internal/adapters"
	"mbti-chat/internal/core"
	"mbti-chat/internal/policies"
	"mbti-chat/internal/ports"
	"mbti-chat/internal/types"
)

// generationModel backs knowledge generation during setup.
const generationModel = "gpt-4"

type Service struct {
	Models    map[types.Provider]ports.ChatModelPort
	Vector    ports.VectorStorePort
	Knowledge ports.KnowledgeSourcePort
	Manifests ports.ManifestSourcePort
	Policy    policies.AllocationPolicy
	Rand      *rand.Rand
}

// Config carries the credentials and endpoints the service connects
// with. Empty credentials disable a provider rather than fail.
type Config struct {
	OpenAIAPIKey      string
	OpenAIModel       string
	LlamaCloudAPIKey  string
	LlamaCloudBaseURL string
	LlamaCloudModel   string

	WeaviateURL        string
	WeaviateAPIKey     string
	WeaviateVectorizer string

	// SeedCorpusPath switches knowledge import from LLM generation to a
	// YAML seed file.
	SeedCorpusPath string
}

func NewService(config Config) (Service, error) {
	models := map[types.Provider]ports.ChatModelPort{}
	if config.OpenAIAPIKey != "" {
		models[types.ProviderOpenAI] = adapters.NewOpenAIChatAdapter(config.OpenAIAPIKey, config.OpenAIModel)
	}
	if config.LlamaCloudAPIKey != "" {
		models[types.ProviderLlamaCloud] = adapters.NewLlamaCloudChatAdapter(config.LlamaCloudAPIKey, config.LlamaCloudBaseURL, config.LlamaCloudModel)
	}
	if len(models) == 0 {
		log.Info().Msg("no provider credentials configured, responses will be simulated")
	}

	var vector ports.VectorStorePort
	if config.WeaviateURL != "" {
		store, err := adapters.NewWeaviateStoreAdapter(adapters.WeaviateConfig{
			URL:          config.WeaviateURL,
			APIKey:       config.WeaviateAPIKey,
			OpenAIAPIKey: config.OpenAIAPIKey,
			Vectorizer:   config.WeaviateVectorizer,
		})
		if err != nil {
			return Service{}, err
		}
		vector = store
	}

	var knowledge ports.KnowledgeSourcePort
	switch {
	case config.SeedCorpusPath != "":
		seed, err := adapters.NewKnowledgeFileAdapter(config.SeedCorpusPath)
		if err != nil {
			return Service{}, err
		}
		knowledge = seed
	case config.OpenAIAPIKey != "":
		// Generation always uses gpt-4, independent of the chat model.
		generator := adapters.NewOpenAIChatAdapter(config.OpenAIAPIKey, generationModel)
		knowledge = adapters.NewKnowledgeGeneratorAdapter(generator)
	}

	return Service{
		Models:    models,
		Vector:    vector,
		Knowledge: knowledge,
		Manifests: adapters.NewManifestFileAdapter(),
		Policy:    policies.NewAllocationPolicy(config.OpenAIAPIKey != "", config.LlamaCloudAPIKey != ""),
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// orchestrator assembles a chat orchestrator over the configured ports.
func (s Service) orchestrator() *core.Orchestrator {
	return core.NewOrchestrator(s.Models, s.Vector, s.Policy, s.Rand)
}
