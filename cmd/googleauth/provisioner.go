package main

import (
	"context"
	"log/slog"

	"github.com/socialauth/googleauth/pkg/authflow"
)

// loggingProvisioner stands in for the account layer of an embedding
// application. It treats every identity as a first-time login, logs the
// hand-off without the access token, and sends the user to their
// requested destination. Replace it with a real authflow.Provisioner to
// integrate account creation and sessions.
type loggingProvisioner struct {
	log *slog.Logger
}

func (p *loggingProvisioner) UserExists(_ context.Context, providerUserID string) (bool, error) {
	p.log.Debug("user lookup", slog.String("provider_user_id", providerUserID))
	return false, nil
}

func (p *loggingProvisioner) Authenticate(_ context.Context, identity authflow.Identity) (string, error) {
	p.log.Info("authenticated",
		slog.String("provider_user_id", identity.ProviderUserID),
		slog.String("email", identity.Email),
		slog.Int("extra_endpoints", len(identity.ExtraData)),
	)

	if identity.Destination != "" {
		return identity.Destination, nil
	}
	return "/", nil
}
