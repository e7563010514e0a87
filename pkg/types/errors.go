// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error taxonomy for the pipeline. Callers match with errors.Is; stages
// wrap these with context using fmt.Errorf and %w.
var (
	// ErrPaperNotFound means an identifier does not resolve at the index.
	ErrPaperNotFound = errors.New("paper not found")

	// ErrInvalidInput means the request shape is wrong (paper count out of
	// range, malformed direction, empty query). Always raised before any
	// network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamUnavailable means the retry budget was exhausted on a
	// fetch whose result cannot be treated as partial.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
