// Package handlers exposes the sign-in flow over HTTP: the two login
// routes, the browser-session cookie, and the mapping from flow errors
// to user-facing redirects. Error detail stays in the logs; the user
// only ever sees a generic failure flag on the login page.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/socialauth/googleauth/internal/metrics"
	"github.com/socialauth/googleauth/pkg/authflow"
	"github.com/socialauth/googleauth/pkg/oauth"
)

const (
	defaultLoginPath  = "/user/login"
	defaultCookieName = "gauth_sid"
)

// Flow is the controller surface the handlers depend on.
// *authflow.Controller satisfies it.
type Flow interface {
	BeginLogin(ctx context.Context, req authflow.BeginRequest) (string, error)
	Callback(ctx context.Context, req authflow.CallbackRequest) (string, error)
}

// Handler serves the login routes.
type Handler struct {
	flow       Flow
	log        *slog.Logger
	loginPath  string
	cookieName string
	secure     bool
}

// Option configures the Handler.
type Option func(*Handler)

// WithLoginPath sets where failed attempts are redirected.
// Default: /user/login.
func WithLoginPath(path string) Option {
	return func(h *Handler) {
		if path != "" {
			h.loginPath = path
		}
	}
}

// WithCookieName sets the browser-session cookie name. Default: gauth_sid.
func WithCookieName(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.cookieName = name
		}
	}
}

// WithSecureCookies marks the session cookie Secure. Enable behind TLS.
func WithSecureCookies(secure bool) Option {
	return func(h *Handler) {
		h.secure = secure
	}
}

// New creates the login handlers.
func New(flow Flow, log *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		flow:       flow,
		log:        log,
		loginPath:  defaultLoginPath,
		cookieName: defaultCookieName,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes mounts the login endpoints on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/login/google", h.Begin)
	r.Get("/login/google/callback", h.Callback)
	return r
}

// Begin redirects the browser to Google's authorization endpoint.
func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	sid := h.ensureSession(w, r)

	authURL, err := h.flow.BeginLogin(r.Context(), authflow.BeginRequest{
		SessionID:   sid,
		Destination: r.URL.Query().Get("destination"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	metrics.LoginsStarted.Inc()
	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback handles Google's response and forwards the browser to the
// provisioning outcome.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	sid := h.ensureSession(w, r)
	q := r.URL.Query()

	redirect, err := h.flow.Callback(r.Context(), authflow.CallbackRequest{
		SessionID: sid,
		Code:      q.Get("code"),
		State:     q.Get("state"),
		Error:     q.Get("error"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	metrics.LoginsCompleted.Inc()
	http.Redirect(w, r, redirect, http.StatusFound)
}

// fail logs the failure with detail, counts it, and sends the user back
// to the login page with only a generic reason flag.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	reason := failureReason(err)
	metrics.LoginsFailed.WithLabelValues(reason).Inc()

	if errors.Is(err, authflow.ErrCancelled) {
		h.log.Info("google login cancelled by user")
	} else {
		h.log.Error("google login failed",
			slog.String("reason", reason),
			slog.String("error", err.Error()),
		)
	}

	http.Redirect(w, r, h.loginPath+"?login_error="+reason, http.StatusFound)
}

// failureReason maps a flow error to the generic flag exposed to the
// login page and to metrics.
func failureReason(err error) string {
	switch {
	case errors.Is(err, authflow.ErrCancelled):
		return "cancelled"
	case errors.Is(err, authflow.ErrNotConfigured):
		return "configuration"
	case errors.Is(err, authflow.ErrInvalidState):
		return "state"
	case errors.Is(err, authflow.ErrDomainNotAllowed):
		return "domain"
	case errors.Is(err, oauth.ErrTokenExchange),
		errors.Is(err, oauth.ErrProfileFetch),
		errors.Is(err, oauth.ErrAPICall):
		return "provider"
	case errors.Is(err, authflow.ErrProvisioning):
		return "provisioning"
	default:
		return "internal"
	}
}
