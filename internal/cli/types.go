package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mbti-chat/internal/core"
)

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the sixteen personality types",
		RunE: func(_ *cobra.Command, _ []string) error {
			profiles, err := core.AllProfiles()
			if err != nil {
				return err
			}
			for _, profile := range profiles {
				fmt.Printf("%s %s (%s): %s\n", profile.Avatar, profile.Code, profile.Nickname, profile.Description)
			}
			return nil
		},
	}
}
