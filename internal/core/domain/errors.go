package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrDecode indicates the source bytes are not a valid document,
	// or a page could not be rasterised. Fatal for the job; the core
	// never retries a decode failure.
	ErrDecode = errors.New("document cannot be decoded")

	// ErrEmptyDocument indicates the source document has no pages.
	// Zero-page input is a caller bug, not a silently empty result.
	ErrEmptyDocument = errors.New("document has no pages")

	// ErrInvalidInput indicates malformed or invalid input, such as
	// non-positive target dimensions or an empty search space.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAuthRequired indicates a connector requires authentication
	// but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrTokenRefreshFailed indicates token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// ErrRateLimited indicates an API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
