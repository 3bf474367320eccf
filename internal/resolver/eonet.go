package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"astrolink/internal/nasa"
)

// EONET resolves natural event tracking data. EONET lives on its own host
// and takes no API key. Failures yield two synthetic events stamped with
// the current time.
func (r *Resolver) EONET(ctx context.Context, category, status string, limit int) Outcome {
	if status == "" {
		status = "open"
	}
	if limit <= 0 {
		limit = 20
	}

	u := fmt.Sprintf("%s/api/v3/events?status=%s&limit=%d",
		r.client.Endpoints().EONETBase, url.QueryEscape(status), limit)
	if category != "" {
		u += "&category=" + url.QueryEscape(category)
	}

	body, err := r.client.Get(ctx, nasa.KindEONET, u, r.timeout(nasa.KindEONET))
	if err != nil {
		slog.Warn("eonet upstream failed, serving fallback", "error", err)
		return fallback(nasa.EONETFallback(time.Now()))
	}
	return success(body)
}
