package domain

import "errors"

// Error taxonomy crossed between adapters, usecases, and the HTTP layer.
// Adapters wrap underlying failures with %w around one of these sentinels
// so handlers can map them to status codes without string matching.
var (
	// ErrSourceUnavailable means the report store could not be reached.
	// The query path recovers by falling back to static documents; the
	// analytics and search paths surface it as 503.
	ErrSourceUnavailable = errors.New("report source unavailable")

	// ErrGenerationUnavailable means the generation backend failed or
	// timed out. Not locally recoverable; surfaced as 500.
	ErrGenerationUnavailable = errors.New("generation backend unavailable")

	// ErrInvalidQuery means the query was empty or missing. Rejected
	// before any external call is made.
	ErrInvalidQuery = errors.New("query is required")
)
