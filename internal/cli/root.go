// Package cli provides the Cobra command structure for mdspace.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jdmonaco/mdformat-space-control/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdspace command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdspace",
		Short: "A Markdown formatter that follows your .editorconfig",
		Long: `mdspace normalizes Markdown files, taking nested-list indentation
from the nearest .editorconfig (indent_style, indent_size) and keeping
YAML frontmatter spacing tight: no blank line before a heading, exactly
one before anything else.

Without an .editorconfig, the built-in 2-space indentation applies.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
