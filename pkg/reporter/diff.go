package reporter

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jdmonaco/mdformat-space-control/pkg/runner"
)

// diffContextLines is the number of unchanged lines shown around hunks.
const diffContextLines = 3

// writeDiff emits a unified diff between the original and formatted
// content of a single file.
func (r *Reporter) writeDiff(path string, file runner.FileResult) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(file.Original)),
		B:        difflib.SplitLines(string(file.Formatted)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("compute diff for %s: %w", path, err)
	}
	if text == "" {
		return nil
	}

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintln(r.out, r.styleDiffLine(line))
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *Reporter) styleDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return r.styles.DiffHeader.Render(line)
	case strings.HasPrefix(line, "@@"):
		return r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return r.styles.DiffRemove.Render(line)
	default:
		return r.styles.DiffContext.Render(line)
	}
}
