package cli

import (
	"context"

	"github.com/spf13/cobra"

	"mbti-chat/internal/app"
)

type multiOptions struct {
	Types []string
	Num   int
	Query string
}

func newMultiCommand() *cobra.Command {
	opts := multiOptions{}
	cmd := &cobra.Command{
		Use:   "multi",
		Short: "Chat with several personality types at once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMulti(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Types, "types", nil, "Types to include; empty picks a random sample")
	cmd.Flags().IntVar(&opts.Num, "num", 3, "Sample size when no types are given")
	cmd.Flags().StringVar(&opts.Query, "query", "", "The message to send")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func runMulti(ctx context.Context, cmd *cobra.Command, opts multiOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.MultiChat(ctx, app.MultiChatRequest{
		Query: opts.Query,
		Types: parseTypes(opts.Types),
		Num:   resolveInt(cmd, opts.Num, "multi_num", "num"),
	})
	if err != nil {
		return err
	}
	for _, response := range result.Responses {
		printResponse(response)
	}
	return nil
}
