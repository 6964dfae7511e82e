package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSelectableOptions is returned when every option of a radio field
	// is disabled, so no answer could ever be accepted.
	ErrNoSelectableOptions = errors.New("tui: no selectable options")
)

// ErrTooManyAttempts is returned when WithMaxAttempts is set and the user keeps
// choosing answers the field rejects.
var ErrTooManyAttempts = errors.New("tui: too many rejected answers")
