// Package policies holds the provider allocation rules that decide
// which LLM backend answers for which personality type.
package policies

import (
	"mbti-chat/internal/core"
	"mbti-chat/internal/types"
)

// AllocationPolicy routes analytical types to the Llama Cloud backend
// and empathetic types to OpenAI, degrading to whatever is configured.
type AllocationPolicy struct {
	OpenAIAvailable     bool
	LlamaCloudAvailable bool
}

func NewAllocationPolicy(openAI bool, llamaCloud bool) AllocationPolicy {
	return AllocationPolicy{
		OpenAIAvailable:     openAI,
		LlamaCloudAvailable: llamaCloud,
	}
}

// ProviderFor returns the preferred provider for a type.
func (p AllocationPolicy) ProviderFor(code types.TypeCode) types.Provider {
	if !p.OpenAIAvailable && !p.LlamaCloudAvailable {
		return types.ProviderSimulation
	}
	if core.IsAnalytical(code) && p.LlamaCloudAvailable {
		return types.ProviderLlamaCloud
	}
	if p.OpenAIAvailable {
		return types.ProviderOpenAI
	}
	return types.ProviderLlamaCloud
}

// Cascade returns the fallback order for a type, always ending in
// simulation so generation never fails outright.
func (p AllocationPolicy) Cascade(code types.TypeCode) []types.Provider {
	primary := p.ProviderFor(code)
	switch primary {
	case types.ProviderLlamaCloud:
		if p.OpenAIAvailable {
			return []types.Provider{types.ProviderLlamaCloud, types.ProviderOpenAI, types.ProviderSimulation}
		}
		return []types.Provider{types.ProviderLlamaCloud, types.ProviderSimulation}
	case types.ProviderOpenAI:
		return []types.Provider{types.ProviderOpenAI, types.ProviderSimulation}
	default:
		return []types.Provider{types.ProviderSimulation}
	}
}
