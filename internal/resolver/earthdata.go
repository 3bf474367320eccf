package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// Earthdata resolves a collection keyword search against the common
// metadata repository.
func (r *Resolver) Earthdata(ctx context.Context, keyword string, pageSize int) Outcome {
	if keyword == "" {
		keyword = "MODIS"
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	u := fmt.Sprintf("%s/search/collections.json?keyword=%s&page_size=%d",
		r.client.Endpoints().CMRBase, url.QueryEscape(keyword), pageSize)

	body, err := r.client.Get(ctx, nasa.KindEarthdata, u, r.timeout(nasa.KindEarthdata))
	if err != nil {
		slog.Warn("earthdata upstream failed", "error", err)
		return genericError("Failed to fetch Earthdata collections")
	}
	return success(body)
}
