package cli

import "errors"

// Exit codes for mdspace.
const (
	// ExitSuccess indicates successful execution with nothing to change.
	ExitSuccess = 0

	// ExitChangesNeeded indicates check found unformatted files.
	ExitChangesNeeded = 1

	// ExitFormatError indicates one or more files failed to format.
	ExitFormatError = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesNeeded):
		return ExitChangesNeeded
	case errors.Is(err, ErrFormatFailed):
		return ExitFormatError
	default:
		return ExitInternalError
	}
}
