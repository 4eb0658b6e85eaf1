package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"mbti-chat/internal/types"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check connectivity to providers and the knowledge base",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.Context())
		},
	}
}

func runDoctor(ctx context.Context) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result := service.Doctor(ctx)
	for _, check := range result.Checks {
		fmt.Printf("%-7s %s: %s\n", marker(check.Status), check.Name, check.Detail)
	}
	if !result.Healthy() {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("one or more checks failed")
	}
	return nil
}

func marker(status types.CheckStatus) string {
	switch status {
	case types.CheckStatusOK:
		return "[ok]"
	case types.CheckStatusWarn:
		return "[warn]"
	default:
		return "[error]"
	}
}
