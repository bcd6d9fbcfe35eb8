package domain

import "errors"

// Sentinel errors shared between services and handlers. Handlers map these to
// client (400) responses; everything else is a server error.
var (
	ErrEmptyText           = errors.New("Text cannot be empty")
	ErrNoExtractedText     = errors.New("No text could be extracted from file")
	ErrUnsupportedFileType = errors.New("Unsupported file extension")
)
