package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// Power resolves daily climate and solar energy data for a point. Defaults
// pick a known-good location and window so the endpoint always answers
// something meaningful without parameters.
func (r *Resolver) Power(ctx context.Context, latitude, longitude, start, end, parameters string) Outcome {
	if latitude == "" {
		latitude = "33.69"
	}
	if longitude == "" {
		longitude = "73.05"
	}
	if start == "" {
		start = "20240101"
	}
	if end == "" {
		end = "20240110"
	}
	if parameters == "" {
		parameters = "T2M,ALLSKY_SFC_SW_DWN"
	}

	u := fmt.Sprintf("%s/api/temporal/daily/point?parameters=%s&latitude=%s&longitude=%s&start=%s&end=%s&community=RE&format=JSON",
		r.client.Endpoints().PowerBase,
		url.QueryEscape(parameters), url.QueryEscape(latitude), url.QueryEscape(longitude),
		url.QueryEscape(start), url.QueryEscape(end))

	body, err := r.client.Get(ctx, nasa.KindPower, u, r.timeout(nasa.KindPower))
	if err != nil {
		slog.Warn("power upstream failed", "error", err)
		return genericError("Failed to fetch POWER data")
	}
	return success(body)
}
