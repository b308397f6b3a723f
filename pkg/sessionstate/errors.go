package sessionstate

import "errors"

var (
	// ErrNotFound is returned when a key does not exist or its session has expired.
	ErrNotFound = errors.New("sessionstate: not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("sessionstate: closed")
)
