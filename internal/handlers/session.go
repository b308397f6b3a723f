package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// sessionCookieMaxAge bounds the browser-session cookie to the same
// order of lifetime as the session state store's TTL.
const sessionCookieMaxAge = 1800

// ensureSession returns the browser-session ID, issuing a fresh cookie
// when the request carries none. The ID scopes the session state store;
// it carries no identity and is HttpOnly.
func (h *Handler) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}
