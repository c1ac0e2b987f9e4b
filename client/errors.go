package client

import (
	"errors"
	"fmt"
)

// StatusError is returned when the server responds with a status code outside
// the operation's accepted set. Body carries the raw response body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.StatusCode, e.Body)
}

// UsageError is returned when an operation cannot be performed with the
// dataset's addressing mode. No request is sent.
type UsageError struct {
	StatusCode int
	Message    string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// GetStatusCode returns the HTTP status code carried by err: the response
// status of a StatusError, or the fixed status of a UsageError. Returns 0 for
// nil and for transport-level errors.
func GetStatusCode(err error) int {
	if err == nil {
		return 0
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return usageErr.StatusCode
	}

	return 0
}
