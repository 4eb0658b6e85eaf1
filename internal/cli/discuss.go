package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mbti-chat/internal/app"
)

type discussOptions struct {
	Topic        string
	Participants []string
	Rounds       int
}

func newDiscussCommand() *cobra.Command {
	opts := discussOptions{}
	cmd := &cobra.Command{
		Use:   "discuss",
		Short: "Run a multi-round group discussion between types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiscuss(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "Discussion topic")
	cmd.Flags().StringSliceVar(&opts.Participants, "participants", nil, "Participating types; empty picks four at random")
	cmd.Flags().IntVar(&opts.Rounds, "rounds", 3, "Number of discussion rounds")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func runDiscuss(ctx context.Context, cmd *cobra.Command, opts discussOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Discuss(ctx, app.DiscussRequest{
		Topic:        opts.Topic,
		Participants: parseTypes(opts.Participants),
		Rounds:       resolveInt(cmd, opts.Rounds, "discuss_rounds", "rounds"),
	})
	if err != nil {
		return err
	}

	discussion := result.Discussion
	fmt.Printf("Topic: %s\n", discussion.Topic)
	round := 0
	for _, entry := range discussion.Entries {
		if entry.Round != round {
			round = entry.Round
			fmt.Printf("\n--- Round %d ---\n", round)
		}
		fmt.Printf("%s: %s\n", entry.Type, entry.Text)
	}
	return nil
}
