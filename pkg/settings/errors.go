package settings

import "errors"

var (
	// ErrMissingClientID is returned when the OAuth client ID is not configured.
	ErrMissingClientID = errors.New("settings: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not configured.
	ErrMissingClientSecret = errors.New("settings: missing client secret")

	// ErrInvalidEndpoint is returned when an extra endpoint entry is not a "path|name" pair.
	ErrInvalidEndpoint = errors.New("settings: invalid endpoint entry")

	// ErrLoadFailed is returned when settings cannot be read from their source.
	ErrLoadFailed = errors.New("settings: failed to load")
)
