package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct{}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler() *ProbeHandler {
	return &ProbeHandler{}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// The proxy holds no connections or state of its own, so readiness equals
// liveness; upstream reachability is deliberately not probed here because a
// down upstream still yields valid (fallback) responses.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
