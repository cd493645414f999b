package zotero

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the Zotero client.
var (
	// ErrAPIError indicates the server answered with a non-success status.
	ErrAPIError = errors.New("Zotero API error")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with Zotero")

	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response from Zotero")
)

// APIError records a request that came back with a non-2xx status.
type APIError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Zotero API error: GET %s returned status %d (%s)", e.URL, e.StatusCode, e.Status)
}

// Unwrap lets errors.Is(err, ErrAPIError) match any *APIError.
func (e *APIError) Unwrap() error {
	return ErrAPIError
}

// IsNotFound returns true if the error indicates a missing library, collection or item.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsAuthError returns true if the error indicates an authentication problem.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// checkHTTPErrors returns an *APIError for any non-2xx response.
func checkHTTPErrors(resp *http.Response, url string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &APIError{
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
}
