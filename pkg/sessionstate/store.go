package sessionstate

import "context"

// Store persists per-browser-session values between the two requests of
// a login attempt. Implementations must treat Remove as idempotent:
// removing absent keys is not an error.
type Store interface {
	// Set stores a value under the given session and key.
	Set(ctx context.Context, sessionID, key, value string) error

	// Get retrieves a value. Returns ErrNotFound if the key is absent
	// or the session has expired.
	Get(ctx context.Context, sessionID, key string) (string, error)

	// Remove deletes the given keys from the session.
	Remove(ctx context.Context, sessionID string, keys ...string) error
}
