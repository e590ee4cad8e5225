package entity

import "errors"

// Domain errors
var (
	// Analysis errors
	ErrUnknownPillar     = errors.New("unknown technology pillar")
	ErrRemoteUnavailable = errors.New("RAG API is not available")

	// Report errors
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidFileType   = errors.New("invalid file type")
	ErrInvalidReport     = errors.New("invalid report data")
	ErrUnsupportedExport = errors.New("unsupported export format")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
