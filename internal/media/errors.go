package media

import "errors"

// Sentinel errors for the media package.
var (
	// ErrUnsupported is returned for files that are neither MP3 nor M4A.
	ErrUnsupported = errors.New("unsupported media type")

	// ErrAnalysis is returned when an audio file's metadata cannot be parsed.
	ErrAnalysis = errors.New("media analysis failed")
)
