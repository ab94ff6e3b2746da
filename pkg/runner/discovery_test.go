package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover(t *testing.T) {
	t.Run("finds markdown files recursively", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "readme.md", "# x\n")
		writeFile(t, dir, "docs/guide.markdown", "# x\n")
		writeFile(t, dir, "notes.txt", "not markdown\n")

		files, err := Discover(context.Background(), Options{WorkingDir: dir})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "docs", "guide.markdown"),
			filepath.Join(dir, "readme.md"),
		}, files)
	})

	t.Run("skips hidden files and directories", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "visible.md", "# x\n")
		writeFile(t, dir, ".hidden.md", "# x\n")
		writeFile(t, dir, ".git/objects/readme.md", "# x\n")

		files, err := Discover(context.Background(), Options{WorkingDir: dir})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "visible.md")}, files)
	})

	t.Run("explicit file bypasses extension filter", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "CHANGELOG", "# x\n")

		files, err := Discover(context.Background(), Options{
			WorkingDir: dir,
			Paths:      []string{"CHANGELOG"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Discover(context.Background(), Options{
			WorkingDir: dir,
			Paths:      []string{"nope.md"},
		})
		require.Error(t, err)
	})

	t.Run("exclude glob prunes directories", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "keep.md", "# x\n")
		writeFile(t, dir, "vendor/dep/readme.md", "# x\n")

		files, err := Discover(context.Background(), Options{
			WorkingDir:   dir,
			ExcludeGlobs: []string{"vendor/**"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "keep.md")}, files)
	})

	t.Run("include glob restricts results", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "readme.md", "# x\n")
		writeFile(t, dir, "docs/guide.md", "# x\n")

		files, err := Discover(context.Background(), Options{
			WorkingDir:   dir,
			IncludeGlobs: []string{"docs/**"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "docs", "guide.md")}, files)
	})

	t.Run("overlapping paths deduplicate", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "readme.md", "# x\n")

		files, err := Discover(context.Background(), Options{
			WorkingDir: dir,
			Paths:      []string{".", "readme.md"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("custom extensions", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "page.mdx", "# x\n")
		writeFile(t, dir, "readme.md", "# x\n")

		files, err := Discover(context.Background(), Options{
			WorkingDir: dir,
			Extensions: []string{".mdx"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "page.mdx")}, files)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Discover(ctx, Options{WorkingDir: t.TempDir()})
		require.Error(t, err)
	})
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"vendor/dep/readme.md", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"vendored/readme.md", "vendor/**", false},
		{"docs/api/index.md", "**/index.md", true},
		{"index.md", "**/index.md", true},
		{"docs/node_modules/x.md", "**/node_modules", true},
		{"readme.md", "*.md", true},
		{"docs/guide.md", "*.md", true},
		{"docs/guide.md", "docs/*.md", true},
		{"docs/api/guide.md", "docs/*.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" vs "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern))
		})
	}
}
