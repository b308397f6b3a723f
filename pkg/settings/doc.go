// Package settings provides the provider configuration consumed by the
// Google sign-in flow: OAuth client credentials, requested scopes, an
// optional restricted hosted domain, and extra API endpoints queried on
// a user's first login.
//
// Scopes and endpoints are stored as free-text lists the way a CMS
// settings form would persist them. Scopes accept comma- or
// newline-delimited values; endpoints are newline-delimited "path|name"
// pairs. Parsing preserves the configured order.
//
// Settings can be sourced statically, from a YAML file, or from
// environment variables:
//
//	provider := settings.NewFile("/etc/googleauth/settings.yaml")
//	cfg, err := provider.Settings(ctx)
package settings
