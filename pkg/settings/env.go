package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds settings sourced from environment variables.
// Scopes and endpoints keep the same free-text formats as the file
// provider; use "\n" separators inside the variable for endpoints.
type EnvConfig struct {
	ClientID         string `env:"GOOGLE_AUTH_CLIENT_ID"`
	ClientSecret     string `env:"GOOGLE_AUTH_CLIENT_SECRET"`
	Scopes           string `env:"GOOGLE_AUTH_SCOPES"`
	RestrictedDomain string `env:"GOOGLE_AUTH_RESTRICTED_DOMAIN"`
	Endpoints        string `env:"GOOGLE_AUTH_ENDPOINTS"`
}

// Env is a Provider backed by process environment variables.
type Env struct{}

// NewEnv creates a Provider reading settings from the environment.
func NewEnv() *Env {
	return &Env{}
}

// Settings parses the GOOGLE_AUTH_* environment variables.
func (p *Env) Settings(_ context.Context) (Settings, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return Settings{}, errors.Join(ErrLoadFailed, fmt.Errorf("parse environment: %w", err))
	}

	return fromRaw(cfg.ClientID, cfg.ClientSecret, cfg.Scopes, cfg.RestrictedDomain, cfg.Endpoints)
}
