package resolver

import (
	"context"

	"astrolink/internal/nasa"
)

// ADS answers astrophysics literature searches. The ADS service requires its
// own API token, which this deployment never carries, so the endpoint is
// permanently degraded: it returns the annotated demo payload echoing the
// query and never attempts the real upstream. The rows parameter is accepted
// for interface compatibility but has no effect on the demo payload.
func (r *Resolver) ADS(_ context.Context, query string, _ int) Outcome {
	if query == "" {
		query = "black hole"
	}
	return fallback(nasa.ADSDemo(query))
}
