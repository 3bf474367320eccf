package resolver

import (
	"context"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// SmallBody resolves a JPL small-body database lookup. The default search
// string is "433", the asteroid Eros.
func (r *Resolver) SmallBody(ctx context.Context, sstr string) Outcome {
	if sstr == "" {
		sstr = "433"
	}

	u := r.client.Endpoints().SSDBase + "/sbdb.api?sstr=" + url.QueryEscape(sstr)

	body, err := r.client.Get(ctx, nasa.KindSBDB, u, r.timeout(nasa.KindSBDB))
	if err != nil {
		slog.Warn("sbdb upstream failed", "error", err)
		return genericError("Failed to fetch Small Body Database data")
	}
	return success(body)
}
