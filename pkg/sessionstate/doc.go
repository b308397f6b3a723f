// Package sessionstate provides the short-lived, per-browser-session
// key-value store the sign-in flow uses to carry the anti-forgery state
// token and, transiently, the access token between the "begin login"
// and "callback" requests.
//
// Values live for one login attempt plus a grace window; the TTL keeps
// an abandoned attempt from leaving state behind. Two backends are
// provided: an in-memory store for single-process deployments and
// tests, and a Redis store for anything load-balanced.
//
// Keys are scoped by session ID at this layer; the flow controller adds
// its own key namespace on top to avoid colliding with host-application
// session data.
package sessionstate
