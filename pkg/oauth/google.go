package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	googleOAuth "golang.org/x/oauth2/google"
)

const (
	googleAPIBase     = "https://www.googleapis.com"
	googleUserInfoURL = googleAPIBase + "/oauth2/v2/userinfo"

	defaultTimeout = 5 * time.Second
)

// Config holds the credentials and callback location for the Google client.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// HostedDomain restricts the account chooser to a Google Workspace
	// domain via the hd authorization parameter. Empty means any account.
	HostedDomain string
}

// Google implements Adapter against Google's OAuth2 endpoints.
type Google struct {
	clientID     string
	clientSecret string
	redirectURL  string
	hostedDomain string
	httpClient   *http.Client
	timeout      time.Duration
}

// NewGoogle creates a Google OAuth client.
// Returns an error if ClientID or ClientSecret is empty.
func NewGoogle(cfg Config, opts ...Option) (*Google, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	o := options{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	return &Google{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURL:  cfg.RedirectURL,
		hostedDomain: cfg.HostedDomain,
		httpClient:   o.httpClient,
		timeout:      o.timeout,
	}, nil
}

// AuthorizationURL builds the Google authorization URL for the given
// scopes and returns it with the fresh state token embedded in it.
// Offline access is always requested so a refresh token is issued on
// first consent.
func (g *Google) AuthorizationURL(scopes []string, opts ...oauth2.AuthCodeOption) (string, string, error) {
	state, err := NewState()
	if err != nil {
		return "", "", fmt.Errorf("generate state token: %w", err)
	}

	authOpts := []oauth2.AuthCodeOption{oauth2.AccessTypeOffline}
	if g.hostedDomain != "" {
		authOpts = append(authOpts, oauth2.SetAuthURLParam("hd", g.hostedDomain))
	}
	authOpts = append(authOpts, opts...)

	return g.oauthConfig(scopes).AuthCodeURL(state, authOpts...), state, nil
}

// Exchange trades an authorization code for a token.
func (g *Google) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx, cancel := g.boundedContext(ctx)
	defer cancel()

	token, err := g.oauthConfig(nil).Exchange(ctx, code)
	if err != nil {
		return nil, joinNetErr(ErrTokenExchange, fmt.Errorf("exchange code: %w", err))
	}
	return token, nil
}

// FetchProfile retrieves the resource owner's profile from Google.
// Accounts with an unverified email are rejected.
func (g *Google) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	ctx, cancel := g.boundedContext(ctx)
	defer cancel()

	body, err := g.authenticatedGet(ctx, googleUserInfoURL, token)
	if err != nil {
		return nil, joinNetErr(ErrProfileFetch, err)
	}

	var user googleUserInfo
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, errors.Join(ErrProfileFetch, fmt.Errorf("decode userinfo: %w", err))
	}

	if user.ID == "" {
		return nil, errors.Join(ErrProfileFetch, errors.New("userinfo response missing user id"))
	}
	if !user.VerifiedEmail {
		return nil, errors.Join(ErrProfileFetch, ErrEmailNotVerified)
	}

	return &Profile{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	}, nil
}

// Get performs an authenticated GET against a googleapis.com path.
func (g *Google) Get(ctx context.Context, path string, token *oauth2.Token) ([]byte, error) {
	ctx, cancel := g.boundedContext(ctx)
	defer cancel()

	body, err := g.authenticatedGet(ctx, googleAPIBase+path, token)
	if err != nil {
		return nil, joinNetErr(ErrAPICall, err)
	}
	return body, nil
}

// authenticatedGet issues a GET with the token-bearing client and
// returns the response body on 200 OK. The caller provides a context
// already carrying the timeout and any custom HTTP client.
func (g *Google) authenticatedGet(ctx context.Context, url string, token *oauth2.Token) ([]byte, error) {
	client := g.oauthConfig(nil).Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: status=%d body=%s", resp.StatusCode, body)
	}

	return body, nil
}

// oauthConfig assembles an oauth2.Config with the given per-call scopes.
func (g *Google) oauthConfig(scopes []string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.clientID,
		ClientSecret: g.clientSecret,
		RedirectURL:  g.redirectURL,
		Scopes:       scopes,
		Endpoint:     googleOAuth.Endpoint,
	}
}

// boundedContext derives a context with the per-call timeout applied.
func (g *Google) boundedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = g.contextWithHTTPClient(ctx)
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Google) contextWithHTTPClient(ctx context.Context) context.Context {
	if g.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)
	}
	return ctx
}

// joinNetErr attaches ErrTimeout when the underlying failure was a
// context deadline, so callers see timeouts as a subtype of the kind.
func joinNetErr(kind, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(kind, ErrTimeout, err)
	}
	return errors.Join(kind, err)
}

// googleUserInfo is the response shape of Google's userinfo endpoint.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	VerifiedEmail bool   `json:"verified_email"`
}

var _ Adapter = (*Google)(nil)
