package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// Exoplanets resolves confirmed planets from the exoplanet archive via its
// TAP SQL interface. The limit is interpolated into the query, so it is
// validated as a positive integer upstream of this call. Failures yield
// three well-known synthetic planets.
func (r *Resolver) Exoplanets(ctx context.Context, limit int) Outcome {
	if limit <= 0 {
		limit = 100
	}

	query := fmt.Sprintf(
		"select pl_name,hostname,pl_orbper,pl_rade,disc_year,discoverymethod from ps where pl_name is not null and pl_orbper is not null and pl_rade is not null limit %d",
		limit)
	u := r.client.Endpoints().ExoplanetBase + "/TAP/sync?query=" + url.QueryEscape(query) + "&format=json"

	body, err := r.client.Get(ctx, nasa.KindExoplanets, u, r.timeout(nasa.KindExoplanets))
	if err != nil {
		slog.Warn("exoplanet upstream failed, serving fallback", "error", err)
		return fallback(nasa.ExoplanetsFallback())
	}
	return success(body)
}
