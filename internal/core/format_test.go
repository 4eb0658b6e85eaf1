package core

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mbti-chat/internal/types"
)

func TestFormatResponseStripsPrefixes(t *testing.T) {
	formatter := NewFormatter(rand.New(rand.NewSource(1)))

	tests := []struct {
		raw  string
		code types.TypeCode
		want string
	}{
		{"INTJ: I have a plan.", types.INTJ, "I have a plan."},
		{"As an INTJ, I have a plan.", types.INTJ, "I have a plan."},
		{"As an INTJ personality, I have a plan.", types.INTJ, "I have a plan."},
		{"Response: I have a plan.", types.INTJ, "I have a plan."},
		{"I have a plan.", types.INTJ, "I have a plan."},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, formatter.FormatResponse(tt.raw, tt.code), "raw: %s", tt.raw)
	}
}

func TestFormatResponseExpressivePunctuation(t *testing.T) {
	formatter := NewFormatter(rand.New(rand.NewSource(1)))

	got := formatter.FormatResponse("That sounds interesting.", types.ENFJ)
	require.True(t, strings.Contains(got, "!"), "expected exclamation, got %q", got)

	// A question stays a question.
	got = formatter.FormatResponse("What do you think?", types.ENFJ)
	require.Equal(t, "What do you think?", got)

	// Quiet types are left alone.
	got = formatter.FormatResponse("That sounds interesting.", types.INTP)
	require.Equal(t, "That sounds interesting.", got)
}

func TestFormatResponseEmojiEventually(t *testing.T) {
	formatter := NewFormatter(rand.New(rand.NewSource(7)))
	sawEmoji := false
	for i := 0; i < 40 && !sawEmoji; i++ {
		got := formatter.FormatResponse("Sounds fun.", types.ENFP)
		if got != "Sounds fun.!" && strings.HasPrefix(got, "Sounds fun.!") && len(got) > len("Sounds fun.!") {
			sawEmoji = true
		}
	}
	require.True(t, sawEmoji, "emoji never appended for ENFP across 40 draws")
}
