package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"astrolink/internal/nasa"
)

// DONKI resolves space weather events over a fixed window of the last seven
// days. type "flr" or "cme" is a single passthrough call; type "all" (the
// default) issues both calls concurrently and merges them under named keys.
// If either concurrent call fails the whole response fails; there is no
// partial-success merge.
func (r *Resolver) DONKI(ctx context.Context, typ string) Outcome {
	if typ == "" {
		typ = "all"
	}

	endDate := today()
	startDate := time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")
	base := r.client.Endpoints().APIBase + "/DONKI"
	key := url.QueryEscape(r.client.Key())

	eventURL := func(event string) string {
		return fmt.Sprintf("%s/%s?startDate=%s&endDate=%s&api_key=%s", base, event, startDate, endDate, key)
	}

	timeout := r.timeout(nasa.KindDONKI)

	switch typ {
	case "flr", "cme":
		event := "FLR"
		if typ == "cme" {
			event = "CME"
		}
		body, err := r.client.Get(ctx, nasa.KindDONKI, eventURL(event), timeout)
		if err != nil {
			slog.Warn("donki upstream failed", "type", typ, "error", err)
			return genericError("Failed to fetch space weather data")
		}
		return success(body)

	default:
		var flr, cme []byte
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			flr, err = r.client.Get(gctx, nasa.KindDONKI, eventURL("FLR"), timeout)
			return err
		})
		g.Go(func() error {
			var err error
			cme, err = r.client.Get(gctx, nasa.KindDONKI, eventURL("CME"), timeout)
			return err
		})
		if err := g.Wait(); err != nil {
			slog.Warn("donki upstream failed", "type", "all", "error", err)
			return genericError("Failed to fetch space weather data")
		}

		merged, err := json.Marshal(map[string]json.RawMessage{
			"solarFlares": json.RawMessage(flr),
			"cmes":        json.RawMessage(cme),
		})
		if err != nil {
			return genericError("Failed to fetch space weather data")
		}
		return success(merged)
	}
}

// DONKINotifications resolves the raw DONKI notification feed.
func (r *Resolver) DONKINotifications(ctx context.Context) Outcome {
	u := fmt.Sprintf("%s/DONKI/notifications?api_key=%s",
		r.client.Endpoints().APIBase, url.QueryEscape(r.client.Key()))

	body, err := r.client.Get(ctx, nasa.KindDONKINotifications, u, r.timeout(nasa.KindDONKINotifications))
	if err != nil {
		slog.Warn("donki notifications upstream failed", "error", err)
		return genericError("Failed to fetch DONKI notifications")
	}
	return success(body)
}
