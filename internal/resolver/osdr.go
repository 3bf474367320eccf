package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// OSDR resolves study file listings from the open science data repository.
func (r *Resolver) OSDR(ctx context.Context, studyID string, page, size int) Outcome {
	if studyID == "" {
		studyID = "OSD-379"
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}

	u := fmt.Sprintf("%s/osdr/data/osd/files/%s?page=%d&size=%d&all_files=true",
		r.client.Endpoints().OSDRBase, url.PathEscape(studyID), page, size)

	body, err := r.client.Get(ctx, nasa.KindOSDR, u, r.timeout(nasa.KindOSDR))
	if err != nil {
		slog.Warn("osdr upstream failed", "error", err)
		return genericError("Failed to fetch OSDR data")
	}
	return success(body)
}
