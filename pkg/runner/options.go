package runner

// Options controls a formatting run.
type Options struct {
	// Paths are the files or directories to format. Empty means the
	// working directory.
	Paths []string

	// WorkingDir is the base for relative paths and glob matching.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are the file extensions treated as Markdown.
	// Empty means DefaultExtensions.
	Extensions []string

	// IncludeGlobs restricts formatting to matching relative paths.
	IncludeGlobs []string

	// ExcludeGlobs skips matching relative paths and directories.
	ExcludeGlobs []string

	// Write applies changes in place. When false the run only records
	// which files would change.
	Write bool
}

// DefaultExtensions returns the Markdown file extensions recognized by
// discovery.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
