package resolver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"astrolink/internal/nasa"
)

// epicDatesTimeout bounds the available-dates lookup, which is cheap and
// should answer fast.
const epicDatesTimeout = 10 * time.Second

// EPIC resolves Earth imagery from the DSCOVR camera. With a date the image
// list for that day is fetched directly. Without one, the list of available
// dates is fetched first and the most recent entry (the last element) picks
// the day; an empty or unreadable dates list drops the date segment and
// lets the upstream choose.
func (r *Resolver) EPIC(ctx context.Context, date string) Outcome {
	base := r.client.Endpoints().APIBase + "/EPIC/api/natural"
	key := url.QueryEscape(r.client.Key())

	path := base
	if date != "" {
		path += "/date/" + url.PathEscape(date)
	} else {
		datesBody, err := r.client.Get(ctx, nasa.KindEPIC, base+"/available?api_key="+key, epicDatesTimeout)
		if err != nil {
			slog.Warn("epic available-dates lookup failed", "error", err)
			return detailedError("Failed to fetch EPIC data", err)
		}

		var dates []struct {
			Date string `json:"date"`
		}
		if json.Unmarshal(datesBody, &dates) == nil && len(dates) > 0 {
			path += "/date/" + url.PathEscape(dates[len(dates)-1].Date)
		}
	}

	body, err := r.client.Get(ctx, nasa.KindEPIC, path+"?api_key="+key, r.timeout(nasa.KindEPIC))
	if err != nil {
		slog.Warn("epic upstream failed", "error", err)
		return detailedError("Failed to fetch EPIC data", err)
	}
	return success(body)
}
