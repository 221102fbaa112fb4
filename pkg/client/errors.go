package client

import "errors"

// Common errors returned by the client.
var (
	// ErrUnknownEndpoint is returned when an endpoint name is not part
	// of the distribution API catalog.
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)
