// Package runner discovers Markdown files and drives the per-file
// format pipeline: read, resolve indentation, format, and either write
// the result in place or record the pending change.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/jdmonaco/mdformat-space-control/internal/logging"
	"github.com/jdmonaco/mdformat-space-control/pkg/editorconfig"
	"github.com/jdmonaco/mdformat-space-control/pkg/fsutil"
	"github.com/jdmonaco/mdformat-space-control/pkg/markdown"
)

// Runner formats sets of Markdown files. Files are processed
// sequentially; the indentation unit is resolved fresh for each file so
// a single document is never formatted under two different widths.
type Runner struct {
	resolver *editorconfig.Resolver
}

// New creates a Runner using the given indent resolver.
func New(resolver *editorconfig.Resolver) *Runner {
	return &Runner{resolver: resolver}
}

// Run discovers and formats files per opts. Per-file failures are
// recorded on the corresponding FileResult; Run itself fails only for
// discovery errors or cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.Default()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}

	result := &Result{}
	result.Stats.FilesDiscovered = len(files)

	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		fr := r.processFile(ctx, path, opts)
		result.Files = append(result.Files, fr)
		result.Stats.FilesProcessed++
		if fr.Error != nil {
			result.Stats.FilesErrored++
			logger.Error("format failed", logging.FieldPath, path, logging.FieldError, fr.Error)
			continue
		}
		if fr.Changed {
			result.Stats.FilesChanged++
		}
		if fr.Written {
			result.Stats.FilesWritten++
			logger.Debug("rewrote file", logging.FieldPath, path)
		}
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	return result, nil
}

func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileResult {
	fr := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		fr.Error = fmt.Errorf("stat %s: %w", path, err)
		return fr
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fr.Error = fmt.Errorf("read %s: %w", path, err)
		return fr
	}
	fr.Original = content

	unit, err := r.resolver.Resolve(path)
	if err != nil {
		fr.Error = fmt.Errorf("resolve indent for %s: %w", path, err)
		return fr
	}

	formatter := markdown.New(
		markdown.WithIndent(unit),
		markdown.WithFrontmatterSpacing(markdown.FrontmatterSpacing{}),
	)

	formatted, err := formatter.Format(ctx, content)
	if err != nil {
		fr.Error = fmt.Errorf("format %s: %w", path, err)
		return fr
	}
	fr.Formatted = formatted
	fr.Changed = !bytes.Equal(content, formatted)

	if fr.Changed && opts.Write {
		if err := fsutil.WriteAtomic(ctx, path, formatted, info.Mode()); err != nil {
			fr.Error = fmt.Errorf("write %s: %w", path, err)
			return fr
		}
		fr.Written = true
	}

	return fr
}
