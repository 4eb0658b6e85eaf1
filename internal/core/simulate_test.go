package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mbti-chat/internal/types"
)

func TestSimulatorGreetings(t *testing.T) {
	sim := NewSimulator()

	tests := []struct {
		code     types.TypeCode
		query    string
		contains string
	}{
		{types.ENFP, "hello there", "So great to hear from you"},
		{types.ENTJ, "hey, got a minute?", "Anything interesting going on"},
		{types.INFP, "hi!", "How are you feeling"},
		{types.INTJ, "hello", "What can I help you with"},
		{types.ISTP, "how are you doing", "What can I help you with"},
	}
	for _, tt := range tests {
		response := sim.Respond(tt.code, tt.query)
		require.Contains(t, response, tt.contains, "%s / %q", tt.code, tt.query)
	}
}

func TestSimulatorWhereIsEveryone(t *testing.T) {
	sim := NewSimulator()
	require.Contains(t, sim.Respond(types.ESFP, "where is everyone today?"), "go find them")
	require.Contains(t, sim.Respond(types.ESTJ, "where did all the people go?"), "maximum efficiency")
	require.Contains(t, sim.Respond(types.INTP, "where is everyone?"), "caught up in my own thoughts")
	require.Contains(t, sim.Respond(types.ISFP, "where is everyone?"), "Not sure where everyone went")
}

func TestSimulatorSports(t *testing.T) {
	sim := NewSimulator()
	for _, code := range types.AllTypes {
		response := sim.Respond(code, "what do you think about swimming?")
		require.NotEmpty(t, response, "no sports response for %s", code)
		require.NotContains(t, response, "%s", "unexpanded template for %s", code)
	}
}

func TestSimulatorGenericTemplates(t *testing.T) {
	sim := NewSimulator()
	for _, code := range types.AllTypes {
		response := sim.Respond(code, "the economics of space travel")
		require.Contains(t, response, "the economics of space travel", "query not echoed for %s", code)
	}
}

func TestSimulatorDeterministic(t *testing.T) {
	sim := NewSimulator()
	first := sim.Respond(types.ENFP, "tell me about music")
	second := sim.Respond(types.ENFP, "tell me about music")
	require.Equal(t, first, second)
}
