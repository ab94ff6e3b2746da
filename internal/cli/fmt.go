package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdmonaco/mdformat-space-control/internal/logging"
	"github.com/jdmonaco/mdformat-space-control/pkg/editorconfig"
	"github.com/jdmonaco/mdformat-space-control/pkg/markdown"
	"github.com/jdmonaco/mdformat-space-control/pkg/runner"
)

// ErrFormatFailed is returned when one or more files could not be
// formatted.
var ErrFormatFailed = errors.New("format failed")

type fmtFlags struct {
	stdin     bool
	stdinPath string
	include   []string
	exclude   []string
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format Markdown files in place",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "read from stdin and write to stdout")
	cmd.Flags().StringVar(&flags.stdinPath, "stdin-path", "",
		"file path used to resolve .editorconfig settings for stdin input")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns to include")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")

	return cmd
}

const fmtLongDescription = `Format Markdown files in place.

By default, formats all .md and .markdown files in the current
directory and subdirectories. Each file's indentation is resolved from
the nearest .editorconfig before formatting; files are rewritten
atomically and only when the content actually changes.

Examples:
  mdspace fmt                          # Format current directory
  mdspace fmt docs/ README.md          # Format a directory and a file
  mdspace fmt --exclude 'vendor/**'    # Skip vendored files
  mdspace fmt --stdin < draft.md       # Filter stdin to stdout
  mdspace fmt --stdin --stdin-path docs/draft.md   # Resolve config as if at this path`

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if flags.stdin {
		return formatStdin(ctx, cmd, flags.stdinPath, workDir)
	}

	logger := logging.Default()
	logger.Debug("formatting",
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
	)

	formatRunner := runner.New(editorconfig.NewResolver(workDir))
	result, err := formatRunner.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		IncludeGlobs: flags.include,
		ExcludeGlobs: flags.exclude,
		Write:        true,
	})
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	logger.Info("done",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
	)

	if result.HasErrors() {
		return ErrFormatFailed
	}
	return nil
}

// formatStdin formats a single document from stdin to stdout. The
// optional path argument stands in for the document's location when
// resolving .editorconfig settings; without it the working directory
// is used.
func formatStdin(ctx context.Context, cmd *cobra.Command, path, workDir string) error {
	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	unit, err := editorconfig.NewResolver(workDir).Resolve(path)
	if err != nil {
		return err
	}

	logging.Default().Debug("resolved indentation",
		logging.FieldIndentStyle, unit.Style.String(),
		logging.FieldIndentWidth, unit.Width,
	)

	formatter := markdown.New(
		markdown.WithIndent(unit),
		markdown.WithFrontmatterSpacing(markdown.FrontmatterSpacing{}),
	)

	formatted, err := formatter.Format(ctx, source)
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(formatted); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
