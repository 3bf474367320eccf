package resolver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"astrolink/internal/nasa"
)

// Techport resolves NASA technology portfolio data: the project list when no
// projectId is given, a single project otherwise. A response carrying
// neither a "projects" list nor a "project" object counts as empty and is
// answered with one synthetic project; an outright failure with two.
func (r *Resolver) Techport(ctx context.Context, projectID string) Outcome {
	base := r.client.Endpoints().APIBase + "/techport/api/projects"
	key := url.QueryEscape(r.client.Key())

	u := base + "?api_key=" + key
	if projectID != "" {
		u = base + "/" + url.PathEscape(projectID) + "?api_key=" + key
	}

	body, err := r.client.Get(ctx, nasa.KindTechport, u, r.timeout(nasa.KindTechport))
	if err != nil {
		slog.Warn("techport upstream failed, serving fallback", "error", err)
		return fallback(nasa.TechportFallback())
	}

	var shape map[string]json.RawMessage
	if json.Unmarshal(body, &shape) == nil {
		if _, ok := shape["projects"]; ok {
			return success(body)
		}
		if _, ok := shape["project"]; ok {
			return success(body)
		}
	}

	slog.Warn("techport upstream returned empty shape, serving fallback")
	return fallback(nasa.TechportEmptyFallback())
}
