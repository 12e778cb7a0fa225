package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory = errors.New("catalog: unknown category")
	ErrNotFound        = errors.New("catalog: item not found")
)

// NetworkError wraps transport failures (DNS, connect, timeout, cancellation).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error for %s: %v", e.URL, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bad status %d from %s", e.Status, e.URL)
	}
	return fmt.Sprintf("bad status %d from %s: %s", e.Status, e.URL, e.Body)
}

// DecodeError means the body was not the JSON shape we expected.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.URL, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// FormatError is returned by display formatting when the input cannot be parsed.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string { return fmt.Sprintf("cannot format %q: %v", e.Value, e.Err) }
func (e *FormatError) Unwrap() error { return e.Err }

// ErrorKind gives a short label for metrics and logs.
func ErrorKind(err error) string {
	var (
		ne *NetworkError
		he *HTTPStatusError
		de *DecodeError
		fe *FormatError
	)
	switch {
	case err == nil:
		return "none"
	case errors.As(err, &ne):
		return "network"
	case errors.As(err, &he):
		return "http_status"
	case errors.As(err, &de):
		return "decode"
	case errors.As(err, &fe):
		return "format"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	}
	return "other"
}
