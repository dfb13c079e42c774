package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrTooLarge is returned when a response body exceeds the limit set
	// with WithMaxBytes.
	ErrTooLarge = errors.New("fetch: response too large")

	// ErrStatus is wrapped by Error for HTTP responses with status >= 400.
	ErrStatus = errors.New("fetch: bad status")
)

// Error describes a failed fetch.
type Error struct {
	URL string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	Err error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch: %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch: %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
