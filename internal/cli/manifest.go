package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"mbti-chat/internal/app"
)

type manifestOptions struct {
	Path    string
	Name    string
	Version string
}

func newManifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Inspect and check pip requirements manifests",
	}
	cmd.AddCommand(newManifestInspectCommand())
	cmd.AddCommand(newManifestValidateCommand())
	cmd.AddCommand(newManifestCheckCommand())
	return cmd
}

func newManifestValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a requirements file and report only problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifestValidate(args[0])
		},
	}
}

func runManifestValidate(path string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.ManifestInspect(app.ManifestInspectRequest{Path: path})
	if err != nil {
		return err
	}
	if len(result.Problems) == 0 {
		fmt.Printf("%s: %d requirements, no problems\n", path, len(result.Manifest.Requirements))
		return nil
	}
	for _, problem := range result.Problems {
		fmt.Printf("line %d: %s: %s\n", problem.Line, problem.Subject, problem.Detail)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%d problems found in %s", len(result.Problems), path))
}

func newManifestInspectCommand() *cobra.Command {
	opts := manifestOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse a requirements file and report problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifestInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Path, "file", "requirements.txt", "Manifest path")
	return cmd
}

func runManifestInspect(cmd *cobra.Command, opts manifestOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.ManifestInspect(app.ManifestInspectRequest{
		Path: resolveString(cmd, opts.Path, "manifest_file", "file"),
	})
	if err != nil {
		return err
	}

	for _, requirement := range result.Manifest.Requirements {
		line := requirement.Name
		if len(requirement.Extras) > 0 {
			line += fmt.Sprintf(" (extras: %v)", requirement.Extras)
		}
		if requirement.RawSpecifier != "" {
			line += " " + requirement.RawSpecifier
		}
		if requirement.Optional {
			line += " [optional]"
		}
		fmt.Println(line)
	}
	if len(result.Problems) == 0 {
		fmt.Printf("%d requirements, no problems\n", len(result.Manifest.Requirements))
		return nil
	}
	for _, problem := range result.Problems {
		fmt.Printf("line %d: %s: %s\n", problem.Line, problem.Subject, problem.Detail)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%d problems found", len(result.Problems)))
}

func newManifestCheckCommand() *cobra.Command {
	opts := manifestOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a version against the manifest's requirement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifestCheck(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Path, "file", "requirements.txt", "Manifest path")
	cmd.Flags().StringVar(&opts.Name, "package", "", "Package name")
	cmd.Flags().StringVar(&opts.Version, "version", "", "Version to check")
	_ = cmd.MarkFlagRequired("package")
	_ = cmd.MarkFlagRequired("version")
	return cmd
}

func runManifestCheck(cmd *cobra.Command, opts manifestOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.ManifestCheck(app.ManifestCheckRequest{
		Path:    resolveString(cmd, opts.Path, "manifest_file", "file"),
		Name:    opts.Name,
		Version: opts.Version,
	})
	if err != nil {
		return err
	}
	if result.Satisfied {
		fmt.Printf("%s %s satisfies %q\n", result.Requirement.Name, opts.Version, result.Requirement.RawSpecifier)
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s %s does not satisfy %q", result.Requirement.Name, opts.Version, result.Requirement.RawSpecifier))
}
