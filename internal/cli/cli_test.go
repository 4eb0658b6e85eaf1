package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbti-chat/internal/types"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"types", "chat", "multi", "discuss", "setup", "doctor", "manifest"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestChatCommandFlags(t *testing.T) {
	cmd := newChatCommand()
	for _, name := range []string{"type", "query"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestMultiCommandFlags(t *testing.T) {
	cmd := newMultiCommand()
	for _, name := range []string{"types", "num", "query"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestDiscussCommandFlags(t *testing.T) {
	cmd := newDiscussCommand()
	for _, name := range []string{"topic", "participants", "rounds"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
	assert.Equal(t, "3", cmd.Flags().Lookup("rounds").DefValue)
}

func TestSetupCommandFlags(t *testing.T) {
	cmd := newSetupCommand()
	for _, name := range []string{"force", "types", "seed-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestManifestCommandTree(t *testing.T) {
	cmd := newManifestCommand()
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "inspect")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "check")

	validate, _, err := cmd.Find([]string{"validate"})
	require.NoError(t, err)
	assert.Error(t, validate.Args(validate, nil), "validate requires a path argument")
	assert.NoError(t, validate.Args(validate, []string{"requirements.txt"}))
}

func TestParseTypes(t *testing.T) {
	codes := parseTypes([]string{" intj ", "ENFP", "", "estp"})
	require.Equal(t, []types.TypeCode{types.INTJ, types.ENFP, types.ESTP}, codes)
}

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid argument",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad"),
			want: 2,
		},
		{
			name: "failed precondition",
			err:  errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("unsatisfied"),
			want: 4,
		},
		{
			name: "not found",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("missing"),
			want: 5,
		},
		{
			name: "internal",
			err:  errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("broken"),
			want: 5,
		},
		{
			name: "plain error",
			err:  errors.New("anything"),
			want: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCodeForError(tc.err))
		})
	}
}

func TestErrorMessagePrefersBuilderMsg(t *testing.T) {
	err := errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("clean message").WithCause(errors.New("wrapped detail"))
	assert.Equal(t, "clean message", errorMessage(err))
	assert.Equal(t, "plain", errorMessage(errors.New("plain")))
}
