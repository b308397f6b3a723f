package oauth

import "errors"

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrTokenExchange is returned when the authorization code cannot be
	// exchanged for an access token.
	ErrTokenExchange = errors.New("oauth: token exchange failed")

	// ErrProfileFetch is returned when the resource owner profile cannot
	// be retrieved or is unusable.
	ErrProfileFetch = errors.New("oauth: profile fetch failed")

	// ErrEmailNotVerified is returned when Google reports the account
	// email as unverified. Joined with ErrProfileFetch.
	ErrEmailNotVerified = errors.New("oauth: email not verified")

	// ErrAPICall is returned when an authenticated request to an extra
	// API endpoint fails.
	ErrAPICall = errors.New("oauth: api call failed")

	// ErrTimeout marks a network failure caused by the bounded per-call
	// timeout. Always joined with the operation's error kind.
	ErrTimeout = errors.New("oauth: request timed out")
)
