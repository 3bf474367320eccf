package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// Images resolves a search against the NASA image and video library.
func (r *Resolver) Images(ctx context.Context, query, mediaType string) Outcome {
	if query == "" {
		query = "earth"
	}
	if mediaType == "" {
		mediaType = "image"
	}

	u := fmt.Sprintf("%s/search?q=%s&media_type=%s",
		r.client.Endpoints().ImagesBase, url.QueryEscape(query), url.QueryEscape(mediaType))

	body, err := r.client.Get(ctx, nasa.KindImages, u, r.timeout(nasa.KindImages))
	if err != nil {
		slog.Warn("image search upstream failed", "error", err)
		return genericError("Failed to fetch NASA images")
	}
	return success(body)
}
