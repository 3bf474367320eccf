package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"astrolink/internal/handlers"
	"astrolink/internal/handlers/api"
	"astrolink/internal/resolver"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(res *resolver.Resolver) {
	nasaHandler := api.NewNasaHandler(res)
	probeHandler := handlers.NewProbeHandler()
	dashboardHandler := handlers.NewDashboardHandler()

	// Operational endpoints
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Dashboard
	s.App.Get("/", dashboardHandler.Index)

	// Proxy surface - all GET, JSON except /api/gibs
	g := s.App.Group("/api")
	g.Get("/apod", nasaHandler.APOD)
	g.Get("/mars-photos", nasaHandler.MarsPhotos)
	g.Get("/neo", nasaHandler.NEO)
	g.Get("/donki", nasaHandler.DONKI)
	g.Get("/donki/notifications", nasaHandler.DONKINotifications)
	g.Get("/epic", nasaHandler.EPIC)
	g.Get("/eonet", nasaHandler.EONET)
	g.Get("/images", nasaHandler.Images)
	g.Get("/power", nasaHandler.Power)
	g.Get("/techport", nasaHandler.Techport)
	g.Get("/gibs", nasaHandler.GIBS)
	g.Get("/sbdb", nasaHandler.SmallBody)
	g.Get("/osdr", nasaHandler.OSDR)
	g.Get("/earthdata", nasaHandler.Earthdata)
	g.Get("/ads", nasaHandler.ADS)
	g.Get("/exoplanets", nasaHandler.Exoplanets)
}
