// Package editorconfig resolves Markdown indentation preferences from
// EditorConfig files. Discovery and section matching are delegated to
// the editorconfig-core library, which walks from the target file's
// directory toward the filesystem root and stops at `root = true`.
package editorconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	core "github.com/editorconfig/editorconfig-core-go/v2"

	"github.com/jdmonaco/mdformat-space-control/pkg/markdown"
)

// probeName is the file name used when resolving settings without a
// real file, such as stdin input: section globs like [*.md] still need
// a Markdown name to match against.
const probeName = "stdin.md"

// Resolver maps file paths to indentation units. An absent or silent
// .editorconfig is a normal case and yields the built-in default, never
// an error; only malformed values are reported.
type Resolver struct {
	workDir string
}

// NewResolver creates a Resolver that falls back to workDir when asked
// to resolve an empty path. An empty workDir means the process working
// directory.
func NewResolver(workDir string) *Resolver {
	return &Resolver{workDir: workDir}
}

// Resolve returns the indentation unit for the given file path. An
// empty path resolves against the working directory. The result is a
// pure function of the path and the configuration files on disk at
// call time; nothing is cached.
func (r *Resolver) Resolve(path string) (markdown.IndentUnit, error) {
	target, err := r.targetPath(path)
	if err != nil {
		return markdown.DefaultIndent, err
	}

	def, err := core.GetDefinitionForFilename(target)
	if err != nil {
		return markdown.DefaultIndent, fmt.Errorf("editorconfig lookup for %s: %w", target, err)
	}

	return unitFromDefinition(def)
}

func (r *Resolver) targetPath(path string) (string, error) {
	if path == "" {
		dir := r.workDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("get working directory: %w", err)
			}
			dir = wd
		}
		return filepath.Join(dir, probeName), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

// unitFromDefinition maps a resolved EditorConfig definition to an
// indentation unit. A space style without a width falls back to 4; a
// tab style records the width but emission ignores it.
func unitFromDefinition(def *core.Definition) (markdown.IndentUnit, error) {
	switch def.IndentStyle {
	case "":
		return markdown.DefaultIndent, nil

	case core.IndentStyleSpaces:
		if def.IndentSize == "" {
			return markdown.Spaces(4), nil
		}
		width, err := strconv.Atoi(def.IndentSize)
		if err != nil {
			return markdown.DefaultIndent, fmt.Errorf("parse indent_size %q: %w", def.IndentSize, err)
		}
		if width <= 0 {
			return markdown.DefaultIndent, fmt.Errorf("indent_size must be positive, got %d", width)
		}
		return markdown.Spaces(width), nil

	case core.IndentStyleTab:
		width := 0
		if def.IndentSize != "" && def.IndentSize != core.IndentStyleTab {
			w, err := strconv.Atoi(def.IndentSize)
			if err != nil {
				return markdown.DefaultIndent, fmt.Errorf("parse indent_size %q: %w", def.IndentSize, err)
			}
			width = w
		}
		return markdown.Tab(width), nil

	default:
		return markdown.DefaultIndent, fmt.Errorf("unrecognized indent_style %q", def.IndentStyle)
	}
}
