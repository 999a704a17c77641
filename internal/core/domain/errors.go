package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Ingestion Errors.

	// ErrSourceUnavailable indicates the tabular source could not be opened.
	// The catalog degrades to empty rather than failing.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrUnsupportedSource indicates no table source handles the location.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrMissingField indicates a row lacks a required field.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidRating indicates a row's rating is not a number.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrMissingColumn indicates a table header lacks a column an
	// offline tool needs.
	ErrMissingColumn = errors.New("missing column")
)
