package runner

// FileResult records the outcome of formatting a single file.
type FileResult struct {
	// Path is the absolute path of the file.
	Path string

	// Changed is true when formatting produced different content.
	Changed bool

	// Written is true when the new content was applied in place.
	Written bool

	// Original is the file content before formatting.
	Original []byte

	// Formatted is the normalized content. Equal to Original when
	// Changed is false.
	Formatted []byte

	// Error is the per-file failure, if any. A failed file never has
	// partial output applied.
	Error error
}

// Stats aggregates counters across a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesWritten    int
	FilesErrored    int
}

// Result holds the outcome of a formatting run.
type Result struct {
	Files []FileResult
	Stats Stats
}

// HasChanges reports whether any file would change (or did change).
func (r *Result) HasChanges() bool {
	return r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r.Stats.FilesErrored > 0
}
