package oauth

import (
	"net/http"
	"time"
)

// Option configures the Google client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	timeout    time.Duration
}

// WithHTTPClient sets a custom HTTP client for all OAuth requests.
// Used for outbound proxy configuration and for testing with
// httptest-backed transports.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout bounds each network operation (exchange, profile fetch,
// API call). Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
