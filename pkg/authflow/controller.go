package authflow

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialauth/googleauth/pkg/oauth"
	"github.com/socialauth/googleauth/pkg/sessionstate"
	"github.com/socialauth/googleauth/pkg/settings"
)

// Session keys used by the flow. Prefixed so they cannot collide with
// host-application session data.
const (
	KeyState       = "googleauth.oauth2state"
	KeyAccessToken = "googleauth.access_token"
	KeyDestination = "googleauth.destination"
)

// AdapterFactory builds an OAuth adapter from freshly loaded settings.
// It models the Unavailable|Ready SDK handle: a factory error means the
// client library cannot be constructed for the current configuration.
type AdapterFactory func(cfg settings.Settings) (oauth.Adapter, error)

// BeginRequest holds the parameters of a "begin login" request.
type BeginRequest struct {
	SessionID   string
	Destination string
	// ExtraScopes are per-attempt scopes appended for re-consent, e.g.
	// an email-only re-request after a denied permission.
	ExtraScopes []string
}

// CallbackRequest holds the parameters Google sends to the callback.
type CallbackRequest struct {
	SessionID string
	Code      string
	State     string
	Error     string
}

// Controller orchestrates the authorization-code flow. All
// collaborators are explicit constructor arguments.
type Controller struct {
	settings    settings.Provider
	store       sessionstate.Store
	provisioner Provisioner
	newAdapter  AdapterFactory
	log         *slog.Logger
	redirectURL string
	adapterOpts []oauth.Option
}

// Option configures the Controller.
type Option func(*Controller)

// WithRedirectURL sets the absolute callback URL registered with Google.
// Used by the default adapter factory.
func WithRedirectURL(url string) Option {
	return func(c *Controller) {
		c.redirectURL = url
	}
}

// WithAdapterFactory replaces the default Google adapter factory.
func WithAdapterFactory(factory AdapterFactory) Option {
	return func(c *Controller) {
		if factory != nil {
			c.newAdapter = factory
		}
	}
}

// WithAdapterOptions passes extra options (HTTP client, timeout) to the
// default adapter factory.
func WithAdapterOptions(opts ...oauth.Option) Option {
	return func(c *Controller) {
		c.adapterOpts = opts
	}
}

// WithLogger sets the logger for flow events. Defaults to a discarding logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController creates a flow controller.
func NewController(provider settings.Provider, store sessionstate.Store, provisioner Provisioner, opts ...Option) *Controller {
	c := &Controller{
		settings:    provider,
		store:       store,
		provisioner: provisioner,
		log:         slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.newAdapter == nil {
		c.newAdapter = func(cfg settings.Settings) (oauth.Adapter, error) {
			return oauth.NewGoogle(oauth.Config{
				ClientID:     cfg.ClientID,
				ClientSecret: cfg.ClientSecret,
				RedirectURL:  c.redirectURL,
				HostedDomain: cfg.RestrictedDomain,
			}, c.adapterOpts...)
		}
	}

	return c
}

// BeginLogin starts a login attempt. It returns the provider
// authorization URL the browser should be redirected to, after storing
// the fresh anti-forgery state token in the session.
func (c *Controller) BeginLogin(ctx context.Context, req BeginRequest) (string, error) {
	cfg, adapter, err := c.loadAdapter(ctx)
	if err != nil {
		return "", err
	}

	if req.Destination != "" {
		if err := c.store.Set(ctx, req.SessionID, KeyDestination, req.Destination); err != nil {
			return "", fmt.Errorf("save destination: %w", err)
		}
	}

	scopes := mergeScopes(cfg.Scopes, req.ExtraScopes)

	authURL, state, err := adapter.AuthorizationURL(scopes)
	if err != nil {
		return "", fmt.Errorf("build authorization url: %w", err)
	}

	if err := c.store.Set(ctx, req.SessionID, KeyState, state); err != nil {
		return "", fmt.Errorf("save state token: %w", err)
	}

	return authURL, nil
}

// Callback processes the provider's response to a login attempt and
// returns the redirect target for the browser. On any failure the
// flow's session keys are cleared before the error is returned.
func (c *Controller) Callback(ctx context.Context, req CallbackRequest) (string, error) {
	// User cancelled on the consent screen. No state check happens.
	if req.Error == "access_denied" {
		c.cleanup(ctx, req.SessionID)
		return "", ErrCancelled
	}

	cfg, adapter, err := c.loadAdapter(ctx)
	if err != nil {
		c.cleanup(ctx, req.SessionID)
		return "", err
	}

	stored, err := c.store.Get(ctx, req.SessionID, KeyState)
	if err != nil && !errors.Is(err, sessionstate.ErrNotFound) {
		c.cleanup(ctx, req.SessionID)
		return "", fmt.Errorf("read state token: %w", err)
	}
	if !stateEqual(stored, req.State) {
		c.cleanup(ctx, req.SessionID)
		return "", ErrInvalidState
	}

	// The token is single-use; drop it as soon as it has been verified.
	if err := c.store.Remove(ctx, req.SessionID, KeyState); err != nil {
		c.log.Warn("failed to drop verified state token", slog.String("error", err.Error()))
	}

	token, err := adapter.Exchange(ctx, req.Code)
	if err != nil {
		c.cleanup(ctx, req.SessionID)
		return "", err
	}

	// Mirror the access token into the session so later same-session
	// API calls can reuse it. Best effort: the login proceeds either way.
	if err := c.store.Set(ctx, req.SessionID, KeyAccessToken, token.AccessToken); err != nil {
		c.log.Warn("failed to save access token to session", slog.String("error", err.Error()))
	}

	profile, err := adapter.FetchProfile(ctx, token)
	if err != nil {
		c.cleanup(ctx, req.SessionID)
		return "", err
	}

	if cfg.RestrictedDomain != "" && !emailInDomain(profile.Email, cfg.RestrictedDomain) {
		c.cleanup(ctx, req.SessionID)
		return "", errors.Join(ErrDomainNotAllowed, fmt.Errorf("account %q outside domain %q", profile.Email, cfg.RestrictedDomain))
	}

	exists, err := c.provisioner.UserExists(ctx, profile.ID)
	if err != nil {
		c.cleanup(ctx, req.SessionID)
		return "", errors.Join(ErrProvisioning, fmt.Errorf("check user existence: %w", err))
	}

	// Extra profile data is collected for first-time logins only.
	var extra []ExtraDetail
	if !exists {
		extra = c.fetchExtraDetails(ctx, adapter, token, cfg.Endpoints)
	}

	destination, err := c.store.Get(ctx, req.SessionID, KeyDestination)
	if err != nil && !errors.Is(err, sessionstate.ErrNotFound) {
		c.log.Warn("failed to read destination", slog.String("error", err.Error()))
	}

	redirect, err := c.provisioner.Authenticate(ctx, Identity{
		Name:           profile.Name,
		Email:          profile.Email,
		ProviderUserID: profile.ID,
		AccessToken:    token.AccessToken,
		PictureURL:     profile.Picture,
		Destination:    destination,
		ExtraData:      extra,
	})
	if err != nil {
		c.cleanup(ctx, req.SessionID)
		return "", errors.Join(ErrProvisioning, err)
	}

	if err := c.store.Remove(ctx, req.SessionID, KeyDestination); err != nil {
		c.log.Warn("failed to drop destination", slog.String("error", err.Error()))
	}

	c.log.Info("user authenticated via google",
		slog.String("provider_user_id", profile.ID),
		slog.Bool("first_login", !exists),
	)

	return redirect, nil
}

// loadAdapter reads the current settings, validates them, and
// constructs the OAuth adapter. Any failure maps to ErrNotConfigured.
func (c *Controller) loadAdapter(ctx context.Context) (settings.Settings, oauth.Adapter, error) {
	cfg, err := c.settings.Settings(ctx)
	if err != nil {
		return settings.Settings{}, nil, errors.Join(ErrNotConfigured, err)
	}
	if err := cfg.Validate(); err != nil {
		return settings.Settings{}, nil, errors.Join(ErrNotConfigured, err)
	}

	adapter, err := c.newAdapter(cfg)
	if err != nil {
		return settings.Settings{}, nil, errors.Join(ErrNotConfigured, err)
	}

	return cfg, adapter, nil
}

// cleanup clears the flow's session keys. Idempotent: clearing absent
// keys is a no-op in every Store implementation.
func (c *Controller) cleanup(ctx context.Context, sessionID string) {
	if err := c.store.Remove(ctx, sessionID, KeyState, KeyAccessToken); err != nil {
		c.log.Warn("failed to clear flow session keys", slog.String("error", err.Error()))
	}
}

// stateEqual compares the stored and received state tokens. The
// comparison is constant-time for equal-length inputs; an absent token
// on either side always fails.
func stateEqual(stored, received string) bool {
	if stored == "" || received == "" {
		return false
	}
	if len(stored) != len(received) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(received)) == 1
}

// emailInDomain reports whether the email belongs to the hosted domain.
func emailInDomain(email, domain string) bool {
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domain))
}
