package manifest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"mbti-chat/internal/types"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		raw        string
		name       string
		normalized string
		specifier  string
		extras     []string
		optional   bool
	}{
		{"streamlit>=1.28.0,<2.0.0", "streamlit", "streamlit", ">=1.28.0,<2.0.0", nil, false},
		{"weaviate-client==3.26.7", "weaviate-client", "weaviate-client", "==3.26.7", nil, false},
		{"openai>=1.0.0", "openai", "openai", ">=1.0.0", nil, false},
		{"llama-cloud  # optional, handled gracefully if missing", "llama-cloud", "llama-cloud", "", nil, true},
		{"llama_index~=0.10", "llama_index", "llama-index", "~=0.10", nil, false},
		{"Llama-Index[weaviate]>=0.10.0", "Llama-Index", "llama-index", ">=0.10.0", []string{"weaviate"}, false},
		{"numpy", "numpy", "numpy", "", nil, false},
		{"pandas<3.0  # pin to v3 for compatibility with existing code", "pandas", "pandas", "<3.0", nil, false},
	}

	for _, tt := range tests {
		req, err := ParseRequirement(tt.raw, 1)
		require.NoError(t, err, "raw: %s", tt.raw)
		if diff := cmp.Diff(tt.name, req.Name); diff != "" {
			t.Fatalf("unexpected name (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(tt.normalized, req.NormalizedName); diff != "" {
			t.Fatalf("unexpected normalized name (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(tt.specifier, req.RawSpecifier); diff != "" {
			t.Fatalf("unexpected specifier (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(tt.extras, req.Extras); diff != "" {
			t.Fatalf("unexpected extras (-want +got):\n%s", diff)
		}
		require.Equal(t, tt.optional, req.Optional, "raw: %s", tt.raw)
	}
}

func TestParseRequirementErrors(t *testing.T) {
	tests := []string{
		">=1.0.0",
		"numpy; python_version >= \"3.9\"",
		"bad name>=1.0",
		"numpy[abc>=1.0",
		"-leading>=1.0",
	}
	for _, raw := range tests {
		_, err := ParseRequirement(raw, 3)
		require.Error(t, err, "raw: %s", raw)
		require.Contains(t, err.Error(), "line 3")
	}
}

func TestParseManifest(t *testing.T) {
	input := strings.Join([]string{
		"# MBTI multi-chat dependencies",
		"",
		"streamlit>=1.28.0,<2.0.0",
		"weaviate-client==3.26.7  # pin to v3 for compatibility with existing code",
		"openai>=1.0.0",
		"llama-cloud  # optional",
		"",
	}, "\n")

	m, err := Parse(strings.NewReader(input), "requirements.txt")
	require.NoError(t, err)
	require.Equal(t, "requirements.txt", m.Source)
	require.Len(t, m.Requirements, 4)
	require.Equal(t, []string{"MBTI multi-chat dependencies"}, m.Comments)

	require.Equal(t, 3, m.Requirements[0].Line)
	require.Equal(t, "pin to v3 for compatibility with existing code", m.Requirements[1].Comment)
	require.True(t, m.Requirements[3].Optional)
}

func TestParseManifestRejectsBadLine(t *testing.T) {
	_, err := Parse(strings.NewReader("streamlit>=1.28.0\n>=2.0\n"), "requirements.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestCheck(t *testing.T) {
	req, err := ParseRequirement("streamlit>=1.28.0,<2.0.0", 1)
	require.NoError(t, err)

	tests := []struct {
		version string
		want    bool
	}{
		{"1.28.0", true},
		{"1.32.1", true},
		{"2.0.0", false},
		{"1.27.9", false},
	}
	for _, tt := range tests {
		got, err := Check(req, tt.version)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "version: %s", tt.version)
	}

	bare, err := ParseRequirement("numpy", 1)
	require.NoError(t, err)
	got, err := Check(bare, "0.0.1")
	require.NoError(t, err)
	require.True(t, got)

	_, err = Check(req, "not-a-version")
	require.Error(t, err)
}

func TestValidateFlagsDuplicates(t *testing.T) {
	input := "numpy>=1.0\nNumPy<2.0\npandas>=2.0\n"
	m, err := Parse(strings.NewReader(input), "requirements.txt")
	require.NoError(t, err)

	problems := Validate(m)
	require.Len(t, problems, 1)
	want := types.ManifestProblem{Line: 2, Subject: "NumPy", Detail: "duplicate of requirement on line 1"}
	if diff := cmp.Diff(want, problems[0]); diff != "" {
		t.Fatalf("unexpected problem (-want +got):\n%s", diff)
	}
}

func TestValidateFlagsContradictoryBounds(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"numpy>=2.0,<1.0", true},
		{"numpy>1.0,<1.0", true},
		{"numpy>=1.0,<1.0", true},
		{"numpy>1.0,<=1.0", true},
		{"numpy>=2.0,<=2.0", false},
		{"numpy>=1.28.0,<2.0.0", false},
		{"numpy<1.0", false},
		{"numpy>=2.0", false},
		{"numpy==3.0", false},
	}
	for _, tt := range tests {
		m, err := Parse(strings.NewReader(tt.raw+"\n"), "requirements.txt")
		require.NoError(t, err, "raw: %s", tt.raw)

		problems := Validate(m)
		if !tt.want {
			require.Empty(t, problems, "raw: %s", tt.raw)
			continue
		}
		require.Len(t, problems, 1, "raw: %s", tt.raw)
		require.Equal(t, "numpy", problems[0].Subject)
		require.Contains(t, problems[0].Detail, "no version can satisfy")
	}
}
