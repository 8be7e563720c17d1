package download

import "errors"

// Sentinel errors for the download package.
var (
	// ErrInvalidLink is returned when a URL does not have the .../file/d/<id>/view shape.
	ErrInvalidLink = errors.New("invalid URL")

	// ErrDownloadFailed is returned when the provider answered but no file was produced.
	ErrDownloadFailed = errors.New("download failed")
)
