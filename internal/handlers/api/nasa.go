// Package api exposes the JSON proxy surface: one GET route per data kind,
// each a thin adapter from query parameters to a resolver call.
package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"astrolink/internal/nasa"
	"astrolink/internal/resolver"
)

// NasaHandler handles all /api data kind routes.
type NasaHandler struct {
	res *resolver.Resolver
}

// NewNasaHandler creates the handler for the proxy routes.
func NewNasaHandler(res *resolver.Resolver) *NasaHandler {
	return &NasaHandler{res: res}
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed so the resolver's defaults kick in.
func queryInt(c fiber.Ctx, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// APOD handles GET /api/apod?date=YYYY-MM-DD.
func (h *NasaHandler) APOD(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindAPOD, h.res.APOD(c.Context(), c.Query("date")))
}

// MarsPhotos handles GET /api/mars-photos?rover=&sol=&camera=.
func (h *NasaHandler) MarsPhotos(c fiber.Ctx) error {
	out := h.res.MarsPhotos(c.Context(), c.Query("rover"), c.Query("sol"), c.Query("camera"))
	return writeOutcome(c, nasa.KindMarsPhotos, out)
}

// NEO handles GET /api/neo?start_date=&end_date=.
func (h *NasaHandler) NEO(c fiber.Ctx) error {
	out := h.res.NEO(c.Context(), c.Query("start_date"), c.Query("end_date"))
	return writeOutcome(c, nasa.KindNEO, out)
}

// DONKI handles GET /api/donki?type=flr|cme|all.
func (h *NasaHandler) DONKI(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindDONKI, h.res.DONKI(c.Context(), c.Query("type")))
}

// DONKINotifications handles GET /api/donki/notifications.
func (h *NasaHandler) DONKINotifications(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindDONKINotifications, h.res.DONKINotifications(c.Context()))
}

// EPIC handles GET /api/epic?date=YYYY-MM-DD.
func (h *NasaHandler) EPIC(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindEPIC, h.res.EPIC(c.Context(), c.Query("date")))
}

// EONET handles GET /api/eonet?category=&status=&limit=.
func (h *NasaHandler) EONET(c fiber.Ctx) error {
	out := h.res.EONET(c.Context(), c.Query("category"), c.Query("status"), queryInt(c, "limit"))
	return writeOutcome(c, nasa.KindEONET, out)
}

// Images handles GET /api/images?q=&media_type=.
func (h *NasaHandler) Images(c fiber.Ctx) error {
	out := h.res.Images(c.Context(), c.Query("q"), c.Query("media_type"))
	return writeOutcome(c, nasa.KindImages, out)
}

// Power handles GET /api/power?latitude=&longitude=&start=&end=&parameters=.
func (h *NasaHandler) Power(c fiber.Ctx) error {
	out := h.res.Power(c.Context(),
		c.Query("latitude"), c.Query("longitude"),
		c.Query("start"), c.Query("end"), c.Query("parameters"))
	return writeOutcome(c, nasa.KindPower, out)
}

// Techport handles GET /api/techport?projectId=.
func (h *NasaHandler) Techport(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindTechport, h.res.Techport(c.Context(), c.Query("projectId")))
}

// GIBS handles GET /api/gibs. Responds with the WMTS capabilities XML.
func (h *NasaHandler) GIBS(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindGIBS, h.res.GIBS(c.Context()))
}

// SmallBody handles GET /api/sbdb?sstr=.
func (h *NasaHandler) SmallBody(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindSBDB, h.res.SmallBody(c.Context(), c.Query("sstr")))
}

// OSDR handles GET /api/osdr?studyId=&page=&size=.
func (h *NasaHandler) OSDR(c fiber.Ctx) error {
	out := h.res.OSDR(c.Context(), c.Query("studyId"), queryInt(c, "page"), queryInt(c, "size"))
	return writeOutcome(c, nasa.KindOSDR, out)
}

// Earthdata handles GET /api/earthdata?keyword=&page_size=.
func (h *NasaHandler) Earthdata(c fiber.Ctx) error {
	out := h.res.Earthdata(c.Context(), c.Query("keyword"), queryInt(c, "page_size"))
	return writeOutcome(c, nasa.KindEarthdata, out)
}

// ADS handles GET /api/ads?q=&rows=. Permanently degraded, see resolver.ADS.
func (h *NasaHandler) ADS(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindADS, h.res.ADS(c.Context(), c.Query("q"), queryInt(c, "rows")))
}

// Exoplanets handles GET /api/exoplanets?limit=.
func (h *NasaHandler) Exoplanets(c fiber.Ctx) error {
	return writeOutcome(c, nasa.KindExoplanets, h.res.Exoplanets(c.Context(), queryInt(c, "limit")))
}
