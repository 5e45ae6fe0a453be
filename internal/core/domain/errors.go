package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedMode indicates an unknown display mode.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrNoFeatureFile indicates the mode has no feature file to load.
	// The communautés overlay mode returns this from the source.
	ErrNoFeatureFile = errors.New("mode has no feature file")

	// ErrFetchFailed indicates a remote fetch rejected or returned a
	// malformed payload. Always non-fatal: article fetches swallow it,
	// collection fetches leave the view without a map layer.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNoExtract indicates the article endpoint answered without a
	// usable plain-text extract.
	ErrNoExtract = errors.New("no extract in response")
)
