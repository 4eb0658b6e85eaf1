package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequirementName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"streamlit", "streamlit"},
		{"LLAMA_Index", "llama-index"},
		{"zope.interface", "zope-interface"},
		{"  python-dotenv  ", "python-dotenv"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeRequirementName(tc.input), "input %q", tc.input)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héllo...", Truncate("héllo wörld", 5))
}
