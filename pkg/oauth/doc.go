// Package oauth wraps the Google OAuth2 client used by the sign-in
// flow. It exposes the four operations the flow controller needs:
// building an authorization URL (with a fresh anti-forgery state
// token), exchanging an authorization code for a token, fetching the
// resource owner's profile, and making authenticated GET requests
// against additional Google API endpoints.
//
// Every network operation applies a bounded timeout and surfaces a
// deadline as ErrTimeout joined with the operation's error kind, so
// callers can treat timeouts as a subtype of the failure rather than a
// hung request.
//
// Usage:
//
//	client, err := oauth.NewGoogle(oauth.Config{
//	    ClientID:     cfg.ClientID,
//	    ClientSecret: cfg.ClientSecret,
//	    RedirectURL:  "https://example.com/login/google/callback",
//	})
//	url, state, err := client.AuthorizationURL([]string{"email", "profile"})
package oauth
