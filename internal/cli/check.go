package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdmonaco/mdformat-space-control/pkg/editorconfig"
	"github.com/jdmonaco/mdformat-space-control/pkg/reporter"
	"github.com/jdmonaco/mdformat-space-control/pkg/runner"
)

// ErrChangesNeeded is returned when check finds files that are not
// formatted. It carries no message of its own; it is a signal for the
// exit code.
var ErrChangesNeeded = errors.New("files would be reformatted")

type checkFlags struct {
	diff    bool
	include []string
	exclude []string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check whether Markdown files are formatted",
		Long: `Check whether Markdown files are formatted, without writing anything.

Lists files that would change and exits non-zero when any are found,
which makes it suitable for CI.

Examples:
  mdspace check                  # Check current directory
  mdspace check --diff docs/     # Show pending changes as diffs`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.diff, "diff", false, "show a unified diff for each unformatted file")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns to include")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	formatRunner := runner.New(editorconfig.NewResolver(workDir))
	result, err := formatRunner.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		IncludeGlobs: flags.include,
		ExcludeGlobs: flags.exclude,
		Write:        false,
	})
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Color:      colorMode,
		WorkingDir: workDir,
		ShowDiff:   flags.diff,
	})

	changed, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return ErrFormatFailed
	}
	if changed > 0 {
		return ErrChangesNeeded
	}
	return nil
}
