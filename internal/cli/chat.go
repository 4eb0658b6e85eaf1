package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mbti-chat/internal/app"
	"mbti-chat/internal/types"
)

type chatOptions struct {
	Type  string
	Query string
}

func newChatCommand() *cobra.Command {
	opts := chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with a single personality type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Type, "type", "", "Four-letter MBTI type, e.g. INTJ")
	cmd.Flags().StringVar(&opts.Query, "query", "", "The message to send")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func runChat(ctx context.Context, opts chatOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Chat(ctx, app.ChatRequest{
		Query: opts.Query,
		Type:  parseType(opts.Type),
	})
	if err != nil {
		return err
	}
	printResponse(result.Response)
	return nil
}

func parseType(raw string) types.TypeCode {
	return types.TypeCode(strings.ToUpper(strings.TrimSpace(raw)))
}

func parseTypes(raw []string) []types.TypeCode {
	codes := make([]types.TypeCode, 0, len(raw))
	for _, value := range raw {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			codes = append(codes, parseType(trimmed))
		}
	}
	return codes
}

func printResponse(response types.PersonaResponse) {
	fmt.Printf("%s [%s]: %s\n", response.Type, response.Provider, response.Text)
}
