package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Endpoint names one extra API call made after a first-time login.
// Path is relative to the provider's API base (e.g. "/plus/v1/people/me").
type Endpoint struct {
	Path string
	Name string
}

// Settings holds the provider configuration for one login flow.
// Values are immutable once loaded; a fresh copy is read from the
// Provider at the start of each request.
type Settings struct {
	ClientID         string
	ClientSecret     string
	Scopes           []string
	RestrictedDomain string
	Endpoints        []Endpoint
}

// Validate checks that the mandatory credentials are present.
// A flow must refuse to start when Validate returns an error.
func (s Settings) Validate() error {
	if s.ClientID == "" {
		return ErrMissingClientID
	}
	if s.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	return nil
}

// ParseScopes splits a free-text scope list into individual scopes.
// Both comma- and newline-delimited lists are accepted, including a mix
// of the two. Entries are trimmed and empty entries dropped; the
// configured order is preserved.
func ParseScopes(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	scopes := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

// ParseEndpoints splits a free-text endpoint list into Endpoint values.
// Each non-empty line must be a "path|name" pair. Order is preserved.
func ParseEndpoints(raw string) ([]Endpoint, error) {
	lines := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	endpoints := make([]Endpoint, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		path, name, ok := strings.Cut(line, "|")
		path = strings.TrimSpace(path)
		name = strings.TrimSpace(name)
		if !ok || path == "" || name == "" {
			return nil, errors.Join(ErrInvalidEndpoint, fmt.Errorf("parse endpoint %q", line))
		}

		endpoints = append(endpoints, Endpoint{Path: path, Name: name})
	}
	return endpoints, nil
}
