// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mbti-chat/internal/types"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// FixturePath resolves a file under the repository's fixtures directory.
func FixturePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "fixtures", name)
}

// SampleObjects returns a small knowledge corpus covering a handful of
// type/category pairs, for seeding stores in tests.
func SampleObjects() []types.KnowledgeObject {
	return []types.KnowledgeObject{
		{
			Content:  "INTJs communicate directly and prefer purposeful conversations.",
			Type:     types.INTJ,
			Category: types.CategoryCommunicationStyle,
			Source:   "test",
		},
		{
			Content:  "INTJs are motivated by competence and long-term vision.",
			Type:     types.INTJ,
			Category: types.CategoryValuesAndMotivations,
			Source:   "test",
		},
		{
			Content:  "ENFPs are animated conversationalists who thrive on connection.",
			Type:     types.ENFP,
			Category: types.CategoryCommunicationStyle,
			Source:   "test",
		},
	}
}
