package main

import (
	"errors"

	"github.com/matsen/zotbib/internal/zotero"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (runtime failure, write failure)
	ExitConfigError = 2 // Configuration error (missing input, bad type map)
	ExitAPIError    = 3 // Zotero API error (non-2xx status, network)
)

// exitError carries an explicit exit code with an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// configError marks err as a configuration error.
func configError(err error) error {
	return &exitError{code: ExitConfigError, err: err}
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, zotero.ErrAPIError) || errors.Is(err, zotero.ErrNetworkError) {
		return ExitAPIError
	}
	return ExitError
}

// errorHint suggests what to check for common Zotero API failures.
func errorHint(err error) string {
	switch {
	case zotero.IsAuthError(err):
		return "check api-key and that it can read the library"
	case zotero.IsNotFound(err):
		return "check library-id, is-group and coll-key"
	case zotero.IsRateLimited(err):
		return "Zotero is rate limiting requests, retry later"
	}
	return ""
}
