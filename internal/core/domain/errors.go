package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Per-symbol processing errors. These are fatal for the single
	// symbol being processed but never abort the batch.

	// ErrMalformedDocument indicates a raw SVG is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingGeometry indicates an SVG root carries neither a size
	// nor a viewBox, so normalisation is impossible.
	ErrMissingGeometry = errors.New("missing geometry")

	// ErrUnparsableGeometry indicates width/height values that do not
	// parse as numbers after stripping their unit suffix.
	ErrUnparsableGeometry = errors.New("unparsable geometry")

	// ErrMissingInput indicates the raw artifact for a symbol was never
	// downloaded. This is a skip condition, not a failure.
	ErrMissingInput = errors.New("missing input")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
