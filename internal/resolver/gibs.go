package resolver

import (
	"context"
	"log/slog"

	"astrolink/internal/nasa"
)

// GIBS resolves the global imagery browse services WMTS capabilities
// document. This is the one endpoint that passes through XML, not JSON.
func (r *Resolver) GIBS(ctx context.Context) Outcome {
	u := r.client.Endpoints().GIBSBase + "/wmts/epsg4326/best/wmts.cgi?SERVICE=WMTS&REQUEST=GetCapabilities"

	body, err := r.client.Get(ctx, nasa.KindGIBS, u, r.timeout(nasa.KindGIBS))
	if err != nil {
		slog.Warn("gibs upstream failed", "error", err)
		return genericError("Failed to fetch GIBS capabilities")
	}

	out := success(body)
	out.ContentType = "application/xml"
	return out
}
