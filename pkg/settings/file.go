package settings

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the configuration store layout: scopes and
// endpoints are kept as the free-text lists an admin form writes.
type fileConfig struct {
	ClientID         string `yaml:"client_id"`
	ClientSecret     string `yaml:"client_secret"`
	Scopes           string `yaml:"scopes"`
	RestrictedDomain string `yaml:"restricted_domain"`
	Endpoints        string `yaml:"endpoints"`
}

// File is a Provider backed by a YAML file. The file is re-read on
// every Settings call so configuration edits take effect without a
// restart, matching config-store semantics.
type File struct {
	path string
}

// NewFile creates a Provider reading settings from the given YAML file.
func NewFile(path string) *File {
	return &File{path: path}
}

// Settings reads and parses the settings file.
func (p *File) Settings(_ context.Context) (Settings, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return Settings{}, errors.Join(ErrLoadFailed, fmt.Errorf("read settings file: %w", err))
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, errors.Join(ErrLoadFailed, fmt.Errorf("parse settings file: %w", err))
	}

	return fromRaw(cfg.ClientID, cfg.ClientSecret, cfg.Scopes, cfg.RestrictedDomain, cfg.Endpoints)
}

// fromRaw assembles Settings from the free-text configuration values.
func fromRaw(clientID, clientSecret, scopes, restrictedDomain, endpoints string) (Settings, error) {
	parsed, err := ParseEndpoints(endpoints)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		ClientID:         clientID,
		ClientSecret:     clientSecret,
		Scopes:           ParseScopes(scopes),
		RestrictedDomain: restrictedDomain,
		Endpoints:        parsed,
	}, nil
}
