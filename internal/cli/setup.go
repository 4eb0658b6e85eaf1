package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mbti-chat/internal/app"
)

type setupOptions struct {
	Force bool
	Types []string
	Seed  string
}

func newSetupCommand() *cobra.Command {
	opts := setupOptions{}
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the knowledge schema and import personality content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Re-import pairs that already have content")
	cmd.Flags().StringSliceVar(&opts.Types, "types", nil, "Restrict the import to these types")
	cmd.Flags().StringVar(&opts.Seed, "seed-file", "", "Import from a YAML seed corpus instead of generating")
	_ = viper.BindPFlag("seed_corpus", cmd.Flags().Lookup("seed-file"))
	return cmd
}

func runSetup(ctx context.Context, cmd *cobra.Command, opts setupOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Setup(ctx, app.SetupRequest{
		Force: resolveBool(cmd, opts.Force, "force", "force"),
		Types: parseTypes(opts.Types),
	})
	if err != nil {
		return err
	}
	fmt.Printf("imported %d, skipped %d, failed %d\n", result.Imported, result.Skipped, result.Failed)
	return nil
}
