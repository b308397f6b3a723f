package settings

import "context"

// Provider yields the current settings. Implementations back onto the
// host application's configuration store; the flow reads settings once
// per request and treats the returned value as immutable.
type Provider interface {
	Settings(ctx context.Context) (Settings, error)
}

// Static is a Provider that always returns the same settings.
// Useful for tests and for applications that wire configuration at startup.
type Static struct {
	settings Settings
}

// NewStatic creates a Provider returning the given settings.
func NewStatic(s Settings) *Static {
	return &Static{settings: s}
}

// Settings returns the configured settings.
func (p *Static) Settings(_ context.Context) (Settings, error) {
	return p.settings, nil
}
