package lookup

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common lookup error conditions.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrRateLimited        = errors.New("rate limited")
	ErrNotFound           = errors.New("not found")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// LookupError represents an error response from a lookup service.
type LookupError struct {
	Service    string
	StatusCode int
	Message    string
	Body       string
}

func (e *LookupError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s lookup error (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s lookup error (status %d): %s", e.Service, e.StatusCode, e.Body)
}

// Unwrap returns the underlying sentinel error based on status code.
func (e *LookupError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return nil
	}
}
