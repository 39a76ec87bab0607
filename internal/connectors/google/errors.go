package google

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates insufficient permissions.
	ErrForbidden = errors.New("google: forbidden (insufficient permissions)")

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("google: resource not found")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")
)

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized
	}
	return false
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}

// RetryAfterSeconds extracts the Retry-After header from a googleapi
// error. Returns 0 when the error carries no usable header.
func RetryAfterSeconds(err error) int {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Header == nil {
		return 0
	}
	seconds, aerr := strconv.Atoi(gerr.Header.Get("Retry-After"))
	if aerr != nil || seconds < 0 {
		return 0
	}
	return seconds
}

// MapError classifies a Google API error onto the domain sentinels so
// callers can match with errors.Is. Rate-limit responses additionally
// feed their Retry-After back into the limiter, delaying the next
// request. Unclassified errors pass through unchanged; limiter may be
// nil.
func MapError(limiter *RateLimiter, err error) error {
	switch {
	case err == nil:
		return nil
	case IsRateLimited(err):
		if limiter != nil {
			limiter.RecordRateLimitError(RetryAfterSeconds(err))
		}
		return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	case IsUnauthorized(err):
		return fmt.Errorf("%w: %v", domain.ErrAuthRequired, err)
	case IsNotFound(err):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	default:
		return err
	}
}
