package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// NEO resolves the near-Earth object feed. Both dates default to the current
// UTC day. On failure the fallback keys its single synthetic object under
// the resolved start date, so the payload shape tracks the actual request.
func (r *Resolver) NEO(ctx context.Context, startDate, endDate string) Outcome {
	if startDate == "" {
		startDate = today()
	}
	if endDate == "" {
		endDate = today()
	}

	u := fmt.Sprintf("%s/neo/rest/v1/feed?start_date=%s&end_date=%s&api_key=%s",
		r.client.Endpoints().APIBase, url.QueryEscape(startDate), url.QueryEscape(endDate), url.QueryEscape(r.client.Key()))

	body, err := r.client.Get(ctx, nasa.KindNEO, u, r.timeout(nasa.KindNEO))
	if err != nil {
		slog.Warn("neo upstream failed, serving fallback", "error", err)
		return fallback(nasa.NEOFallback(startDate))
	}
	return success(body)
}
