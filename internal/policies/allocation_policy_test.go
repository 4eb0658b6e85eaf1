package policies

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mbti-chat/internal/types"
)

func TestProviderForPrefersLlamaCloudForAnalyticalTypes(t *testing.T) {
	policy := NewAllocationPolicy(true, true)

	require.Equal(t, types.ProviderLlamaCloud, policy.ProviderFor(types.INTJ))
	require.Equal(t, types.ProviderLlamaCloud, policy.ProviderFor(types.ISTP))
	require.Equal(t, types.ProviderOpenAI, policy.ProviderFor(types.ENFP))
	require.Equal(t, types.ProviderOpenAI, policy.ProviderFor(types.ISFJ))
}

func TestProviderForWithoutLlamaCloud(t *testing.T) {
	policy := NewAllocationPolicy(true, false)

	require.Equal(t, types.ProviderOpenAI, policy.ProviderFor(types.INTJ))
	require.Equal(t, types.ProviderOpenAI, policy.ProviderFor(types.ENFP))
}

func TestProviderForWithoutAnyProvider(t *testing.T) {
	policy := NewAllocationPolicy(false, false)

	require.Equal(t, types.ProviderSimulation, policy.ProviderFor(types.INTJ))
}

func TestCascadeAlwaysEndsInSimulation(t *testing.T) {
	cases := []struct {
		name   string
		policy AllocationPolicy
		code   types.TypeCode
		want   []types.Provider
	}{
		{
			name:   "analytical with both providers",
			policy: NewAllocationPolicy(true, true),
			code:   types.ENTJ,
			want:   []types.Provider{types.ProviderLlamaCloud, types.ProviderOpenAI, types.ProviderSimulation},
		},
		{
			name:   "feeler with both providers",
			policy: NewAllocationPolicy(true, true),
			code:   types.ESFJ,
			want:   []types.Provider{types.ProviderOpenAI, types.ProviderSimulation},
		},
		{
			name:   "analytical with llama cloud only",
			policy: NewAllocationPolicy(false, true),
			code:   types.INTP,
			want:   []types.Provider{types.ProviderLlamaCloud, types.ProviderSimulation},
		},
		{
			name:   "openai only",
			policy: NewAllocationPolicy(true, false),
			code:   types.INTP,
			want:   []types.Provider{types.ProviderOpenAI, types.ProviderSimulation},
		},
		{
			name:   "no providers",
			policy: NewAllocationPolicy(false, false),
			code:   types.ESFP,
			want:   []types.Provider{types.ProviderSimulation},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.policy.Cascade(tc.code)
			require.Equal(t, tc.want, got)
			require.Equal(t, types.ProviderSimulation, got[len(got)-1])
		})
	}
}
