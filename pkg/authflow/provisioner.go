package authflow

import "context"

// Identity carries the verified identity attributes handed to the
// provisioning collaborator after a successful authentication.
type Identity struct {
	Name           string
	Email          string
	ProviderUserID string
	AccessToken    string
	PictureURL     string
	// Destination is the post-login redirect target requested when the
	// flow began, empty if none. The collaborator decides whether to
	// honor it.
	Destination string
	// ExtraData holds the extra-endpoint responses collected on a
	// first-time login, in configured order. Nil when the user already
	// existed.
	ExtraData []ExtraDetail
}

// ExtraDetail is one extra-endpoint response. Body is empty when the
// endpoint call failed; the entry still appears so the payload keeps
// the configured shape.
type ExtraDetail struct {
	Name string `json:"name"`
	Body string `json:"body,omitempty"`
}

// Provisioner is the external collaborator that turns a verified
// provider identity into a local account session.
type Provisioner interface {
	// UserExists reports whether the provider identity has been seen before.
	UserExists(ctx context.Context, providerUserID string) (bool, error)

	// Authenticate creates or logs in the local account and returns the
	// redirect target the browser should be sent to.
	Authenticate(ctx context.Context, identity Identity) (string, error)
}
