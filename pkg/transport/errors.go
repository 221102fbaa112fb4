package transport

import (
	"errors"
	"fmt"
)

// StatusError reports a provider response outside the 2xx range. The
// client fails fast on these; there is no retry policy.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("booking %s request failed: %s", e.Endpoint, e.Status)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
