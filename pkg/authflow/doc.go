// Package authflow drives the Google sign-in authorization-code flow.
//
// The Controller orchestrates the two HTTP entry points of a login
// attempt. BeginLogin validates configuration, merges the mandatory and
// configured scopes, stores a fresh anti-forgery state token in the
// per-browser-session store, and returns the provider authorization
// URL. Callback verifies the round-tripped state token, exchanges the
// authorization code for an access token, fetches the resource owner's
// profile, fans out any configured extra API calls on a first-time
// login, and hands the verified identity to the provisioning
// collaborator, whose redirect outcome is returned verbatim.
//
// Every failure during callback processing clears the flow's namespaced
// session keys, so a half-completed attempt cannot be replayed or leave
// stale state behind for the next one.
//
// All collaborators are passed explicitly:
//
//	ctrl := authflow.NewController(settingsProvider, store, provisioner,
//	    authflow.WithRedirectURL("https://example.com/login/google/callback"),
//	)
package authflow
