package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// FallbackSol is the rover-specific sol retried when a photo query comes
// back empty. Perseverance landed recently, so high sols have no photos yet;
// for the older rovers sol 2000 is a safe, photo-rich day.
func FallbackSol(rover string) string {
	if rover == "perseverance" {
		return "100"
	}
	return "2000"
}

// MarsPhotos resolves rover photos for a sol. An empty-but-valid result set
// triggers exactly one secondary query with the rover's fallback sol, whose
// result is returned even if it is also empty. Transport or HTTP failures
// on either query produce the error envelope, not a fallback payload.
func (r *Resolver) MarsPhotos(ctx context.Context, rover, sol, camera string) Outcome {
	if rover == "" {
		rover = "curiosity"
	}
	if sol == "" {
		sol = "1000"
	}

	body, err := r.fetchPhotos(ctx, rover, sol, camera)
	if err != nil {
		slog.Warn("mars photos upstream failed", "rover", rover, "sol", sol, "error", err)
		return detailedError("Failed to fetch Mars photos", err)
	}

	var parsed struct {
		Photos []json.RawMessage `json:"photos"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Photos != nil && len(parsed.Photos) == 0 {
		fsol := FallbackSol(rover)
		slog.Info("no photos for sol, retrying with fallback sol", "rover", rover, "sol", sol, "fallback_sol", fsol)
		body, err = r.fetchPhotos(ctx, rover, fsol, "")
		if err != nil {
			return detailedError("Failed to fetch Mars photos", err)
		}
		out := success(body)
		out.Secondary = true
		out.SubstitutedSol = fsol
		return out
	}

	return success(body)
}

func (r *Resolver) fetchPhotos(ctx context.Context, rover, sol, camera string) ([]byte, error) {
	u := fmt.Sprintf("%s/mars-photos/api/v1/rovers/%s/photos?sol=%s&api_key=%s",
		r.client.Endpoints().APIBase, url.PathEscape(rover), url.QueryEscape(sol), url.QueryEscape(r.client.Key()))
	if camera != "" {
		u += "&camera=" + url.QueryEscape(camera)
	}
	return r.client.Get(ctx, nasa.KindMarsPhotos, u, r.timeout(nasa.KindMarsPhotos))
}
