// Package handlers holds the HTML-facing handlers: the dashboard page and
// the health probes. The JSON proxy surface lives in handlers/api.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"astrolink/internal/nasa"
)

// endpointInfo describes one proxy route for the dashboard listing.
type endpointInfo struct {
	Kind        string
	Path        string
	Params      string
	Description string
	Fallback    bool
}

var catalog = []endpointInfo{
	{"apod", "/api/apod", "date", "Astronomy picture of the day", true},
	{"mars-photos", "/api/mars-photos", "rover, sol, camera", "Mars rover imagery", false},
	{"neo", "/api/neo", "start_date, end_date", "Near-Earth object feed", true},
	{"donki", "/api/donki", "type=flr|cme|all", "Space weather events, last 7 days", false},
	{"donki-notifications", "/api/donki/notifications", "", "Space weather notifications", false},
	{"epic", "/api/epic", "date", "Earth imagery from DSCOVR", false},
	{"eonet", "/api/eonet", "category, status, limit", "Natural event tracking", true},
	{"images", "/api/images", "q, media_type", "Image and video library search", false},
	{"power", "/api/power", "latitude, longitude, start, end, parameters", "Climate and solar energy data", false},
	{"techport", "/api/techport", "projectId", "Technology portfolio", true},
	{"gibs", "/api/gibs", "", "Imagery browse capabilities (XML)", false},
	{"sbdb", "/api/sbdb", "sstr", "Small-body database lookup", false},
	{"osdr", "/api/osdr", "studyId, page, size", "Open science data repository", false},
	{"earthdata", "/api/earthdata", "keyword, page_size", "Earth-observation metadata search", false},
	{"ads", "/api/ads", "q, rows", "Astrophysics literature (demo only)", true},
	{"exoplanets", "/api/exoplanets", "limit", "Exoplanet archive", true},
}

// DashboardHandler renders the endpoint catalog page.
type DashboardHandler struct{}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Index renders the dashboard with the full endpoint catalog.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":     "AstroLink",
		"Endpoints": catalog,
		"KindCount": len(nasa.Kinds),
	})
}
