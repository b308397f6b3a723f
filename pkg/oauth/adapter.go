package oauth

import (
	"context"

	"golang.org/x/oauth2"
)

// Profile holds the resource owner's identity as exposed by the
// provider's userinfo endpoint.
type Profile struct {
	ID      string // Provider's stable user identifier
	Email   string
	Name    string
	Picture string
}

// Adapter abstracts the OAuth2 client operations the flow controller
// depends on. The Google implementation is the only one shipped, but
// the flow is written against this contract so tests can substitute
// fakes.
type Adapter interface {
	// AuthorizationURL builds the provider authorization URL for the
	// given scopes and returns it together with the fresh anti-forgery
	// state token embedded in it. No network call is made.
	AuthorizationURL(scopes []string, opts ...oauth2.AuthCodeOption) (url, state string, err error)

	// Exchange trades an authorization code for a token.
	// Fails with ErrTokenExchange.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)

	// FetchProfile retrieves the resource owner's profile using the
	// access token. Fails with ErrProfileFetch.
	FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error)

	// Get performs an authenticated GET against an API path relative to
	// the provider's API base. Fails with ErrAPICall.
	Get(ctx context.Context, path string, token *oauth2.Token) ([]byte, error)
}
