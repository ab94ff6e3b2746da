package editorconfig

import (
	"os"
	"path/filepath"
	"testing"

	core "github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdmonaco/mdformat-space-control/pkg/markdown"
)

// writeConfig drops a .editorconfig into dir. All fixtures declare
// root = true so lookups never escape the test directory.
func writeConfig(t *testing.T, dir, sections string) {
	t.Helper()
	content := "root = true\n\n" + sections
	err := os.WriteFile(filepath.Join(dir, ".editorconfig"), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestResolve(t *testing.T) {
	t.Run("four space configuration", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = space\nindent_size = 4\n")

		unit, err := NewResolver(dir).Resolve(filepath.Join(dir, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.Spaces(4), unit)
	})

	t.Run("no configuration yields default", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "")

		unit, err := NewResolver(dir).Resolve(filepath.Join(dir, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.DefaultIndent, unit)
	})

	t.Run("space style without size falls back to four", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = space\n")

		unit, err := NewResolver(dir).Resolve(filepath.Join(dir, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.Spaces(4), unit)
	})

	t.Run("tab style emits a tab", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = tab\nindent_size = 4\n")

		unit, err := NewResolver(dir).Resolve(filepath.Join(dir, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.IndentTab, unit.Style)
		assert.Equal(t, "\t", unit.String())
	})

	t.Run("settings inherit from parent directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = space\nindent_size = 8\n")
		sub := filepath.Join(dir, "docs", "guides")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		unit, err := NewResolver(dir).Resolve(filepath.Join(sub, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.Spaces(8), unit)
	})

	t.Run("root marker stops the upward walk", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = space\nindent_size = 8\n")
		sub := filepath.Join(dir, "vendored")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		writeConfig(t, sub, "")

		unit, err := NewResolver(dir).Resolve(filepath.Join(sub, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.DefaultIndent, unit)
	})

	t.Run("nearer section wins over parent", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = space\nindent_size = 8\n")
		sub := filepath.Join(dir, "docs")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		err := os.WriteFile(filepath.Join(sub, ".editorconfig"),
			[]byte("[*.md]\nindent_size = 3\n"), 0o644)
		require.NoError(t, err)

		unit, err := NewResolver(dir).Resolve(filepath.Join(sub, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.Spaces(3), unit)
	})

	t.Run("non matching glob yields default", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.py]\nindent_style = space\nindent_size = 4\n")

		unit, err := NewResolver(dir).Resolve(filepath.Join(dir, "doc.md"))
		require.NoError(t, err)
		assert.Equal(t, markdown.DefaultIndent, unit)
	})

	t.Run("malformed size is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = space\nindent_size = wide\n")

		_, err := NewResolver(dir).Resolve(filepath.Join(dir, "doc.md"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "indent_size")
	})

	t.Run("empty path probes the working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "[*.md]\nindent_style = space\nindent_size = 4\n")

		unit, err := NewResolver(dir).Resolve("")
		require.NoError(t, err)
		assert.Equal(t, markdown.Spaces(4), unit)
	})
}

func TestUnitFromDefinition(t *testing.T) {
	tests := []struct {
		name    string
		def     core.Definition
		want    markdown.IndentUnit
		wantErr bool
	}{
		{
			name: "empty definition",
			def:  core.Definition{},
			want: markdown.DefaultIndent,
		},
		{
			name: "space with size",
			def:  core.Definition{IndentStyle: core.IndentStyleSpaces, IndentSize: "4"},
			want: markdown.Spaces(4),
		},
		{
			name: "space without size",
			def:  core.Definition{IndentStyle: core.IndentStyleSpaces},
			want: markdown.Spaces(4),
		},
		{
			name: "tab with size tab",
			def:  core.Definition{IndentStyle: core.IndentStyleTab, IndentSize: core.IndentStyleTab},
			want: markdown.Tab(0),
		},
		{
			name: "tab with numeric size",
			def:  core.Definition{IndentStyle: core.IndentStyleTab, IndentSize: "8"},
			want: markdown.Tab(8),
		},
		{
			name:    "zero size",
			def:     core.Definition{IndentStyle: core.IndentStyleSpaces, IndentSize: "0"},
			wantErr: true,
		},
		{
			name:    "negative size",
			def:     core.Definition{IndentStyle: core.IndentStyleSpaces, IndentSize: "-2"},
			wantErr: true,
		},
		{
			name:    "unrecognized style",
			def:     core.Definition{IndentStyle: "banana"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := unitFromDefinition(&tt.def)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, unit)
		})
	}
}
