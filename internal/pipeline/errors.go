package pipeline

import "errors"

// Sentinel errors for the pipeline package.
var (
	// ErrFileLocked is returned when the workbook is open in another process.
	ErrFileLocked = errors.New("workbook is open in another application")

	// ErrNoLinks is returned when the selected sheets contain no file links to process.
	ErrNoLinks = errors.New("no file links found")

	// ErrInvalidRequest is returned when a Request is missing a required field.
	ErrInvalidRequest = errors.New("invalid request")
)
