package api

import (
	"github.com/gofiber/fiber/v3"

	"astrolink/internal/metrics"
	"astrolink/internal/nasa"
	"astrolink/internal/resolver"
)

// writeOutcome sends a resolved outcome to the client. The resolver has
// already decided status, body and content type; this only records metrics
// and surfaces the Mars sol substitution so callers can detect it.
func writeOutcome(c fiber.Ctx, kind nasa.Kind, out resolver.Outcome) error {
	metrics.RecordRequest(string(kind), out.Label())

	if out.SubstitutedSol != "" {
		c.Set("X-Substituted-Sol", out.SubstitutedSol)
	}

	ct := out.ContentType
	if ct == "" {
		ct = fiber.MIMEApplicationJSON
	}
	c.Set(fiber.HeaderContentType, ct)

	return c.Status(out.Status).Send(out.Body)
}
