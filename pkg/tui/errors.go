package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoController is returned by New when no session controller is given.
	ErrNoController = errors.New("tui: controller is nil")
)
