package authflow

import (
	"context"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/socialauth/googleauth/pkg/oauth"
	"github.com/socialauth/googleauth/pkg/settings"
)

// fetchExtraDetails calls the configured extra endpoints concurrently
// and collects their responses in configured order. The fan-out is
// advisory: a failed call leaves its entry's body empty and never
// aborts the login or cancels its siblings. Each call carries the
// adapter's own bounded timeout.
func (c *Controller) fetchExtraDetails(ctx context.Context, adapter oauth.Adapter, token *oauth2.Token, endpoints []settings.Endpoint) []ExtraDetail {
	if len(endpoints) == 0 {
		return nil
	}

	details := make([]ExtraDetail, len(endpoints))

	var g errgroup.Group
	for i, ep := range endpoints {
		details[i].Name = ep.Name

		g.Go(func() error {
			body, err := adapter.Get(ctx, ep.Path, token)
			if err != nil {
				c.log.Warn("extra endpoint call failed",
					slog.String("endpoint", ep.Name),
					slog.String("path", ep.Path),
					slog.String("error", err.Error()),
				)
				return nil
			}
			details[i].Body = string(body)
			return nil
		})
	}
	_ = g.Wait()

	return details
}
