package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the domain and use case layers.
var (
	// ErrInvalidRequest indicates the search query or criteria failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAllSourcesFailed indicates every inventory source for a vertical failed.
	ErrAllSourcesFailed = errors.New("all inventory sources failed")

	// ErrUnknownVertical indicates a vertical name that the storefront does not serve.
	ErrUnknownVertical = errors.New("unknown vertical")

	// ErrSourceUnavailable is a transient inventory failure worth retrying.
	ErrSourceUnavailable = errors.New("inventory source unavailable")
)

// SourceError wraps a failure from a single inventory source.
type SourceError struct {
	// Source is the name of the failing source
	Source string

	// Err is the underlying error
	Err error

	// Retryable marks transient failures
	Retryable bool
}

// NewSourceError creates a non-retryable source error.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a source error that the search use case may retry.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a retryable source error or wraps ErrSourceUnavailable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var srcErr *SourceError
	if errors.As(err, &srcErr) && srcErr.Retryable {
		return true
	}
	return errors.Is(err, ErrSourceUnavailable)
}
