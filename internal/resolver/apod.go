package resolver

import (
	"context"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// APOD resolves the astronomy picture of the day. An empty date means
// "today" (the upstream default). Any failure yields the sample picture
// dated today.
func (r *Resolver) APOD(ctx context.Context, date string) Outcome {
	u := r.client.Endpoints().APIBase + "/planetary/apod?api_key=" + url.QueryEscape(r.client.Key())
	if date != "" {
		u += "&date=" + url.QueryEscape(date)
	}

	body, err := r.client.Get(ctx, nasa.KindAPOD, u, r.timeout(nasa.KindAPOD))
	if err != nil {
		slog.Warn("apod upstream failed, serving fallback", "error", err)
		return fallback(nasa.APODFallback(today()))
	}
	return success(body)
}
