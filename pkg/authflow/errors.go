package authflow

import "errors"

var (
	// ErrNotConfigured is returned when the provider settings are
	// missing or invalid. The attempt cannot start; the user should see
	// a generic "contact the administrator" message.
	ErrNotConfigured = errors.New("authflow: provider not configured")

	// ErrInvalidState is returned when the callback's state parameter is
	// absent or does not match the stored anti-forgery token. Treated as
	// a potential CSRF or replay attempt.
	ErrInvalidState = errors.New("authflow: invalid oauth2 state")

	// ErrCancelled is returned when the provider reports the user denied
	// access. A normal rejection, not a fault.
	ErrCancelled = errors.New("authflow: login cancelled by user")

	// ErrDomainNotAllowed is returned when a restricted hosted domain is
	// configured and the authenticated account belongs to another domain.
	ErrDomainNotAllowed = errors.New("authflow: account domain not allowed")

	// ErrProvisioning is returned when the user provisioning
	// collaborator fails.
	ErrProvisioning = errors.New("authflow: user provisioning failed")
)
