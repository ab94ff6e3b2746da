// Package reporter renders the outcome of a formatting run: unified
// diffs of pending changes in check mode and a one-line summary.
package reporter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jdmonaco/mdformat-space-control/internal/ui/pretty"
	"github.com/jdmonaco/mdformat-space-control/pkg/runner"
)

// Options configures a Reporter.
type Options struct {
	// Writer receives the report output.
	Writer io.Writer

	// Color is the color mode: "auto", "always", or "never".
	Color string

	// WorkingDir, when set, shortens reported paths to be relative.
	WorkingDir string

	// ShowDiff emits a unified diff for every file that would change.
	ShowDiff bool
}

// Reporter writes formatting results to a writer.
type Reporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// New creates a Reporter.
func New(opts Options) *Reporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Reporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report writes the run result. It returns the number of files with
// pending or applied changes.
func (r *Reporter) Report(ctx context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("report: %w", ctx.Err())
	default:
	}

	changed := 0
	for _, file := range result.Files {
		path := r.displayPath(file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.out, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if !file.Changed {
			continue
		}
		changed++

		if r.opts.ShowDiff {
			if err := r.writeDiff(path, file); err != nil {
				return changed, err
			}
		} else {
			fmt.Fprintln(r.out, r.styles.FilePath.Render(path))
		}
	}

	r.writeSummary(result, changed)
	return changed, nil
}

func (r *Reporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}

func (r *Reporter) writeSummary(result *runner.Result, changed int) {
	total := result.Stats.FilesProcessed

	switch {
	case result.HasErrors():
		fmt.Fprintln(r.out, r.styles.Failure.Render(
			fmt.Sprintf("%d of %d files failed", result.Stats.FilesErrored, total)))
	case result.Stats.FilesWritten > 0:
		fmt.Fprintln(r.out, r.styles.Success.Render(
			fmt.Sprintf("%d of %d files reformatted", result.Stats.FilesWritten, total)))
	case changed > 0:
		fmt.Fprintln(r.out, r.styles.Failure.Render(
			fmt.Sprintf("%d of %d files would be reformatted", changed, total)))
	default:
		fmt.Fprintln(r.out, r.styles.Success.Render(
			fmt.Sprintf("%d files already formatted", total)))
	}
}
