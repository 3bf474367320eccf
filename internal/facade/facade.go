// Package facade is the Go client for the proxy. Each data kind method
// tries an ordered chain of strategies: the proxy first (with a fixed retry
// count and exponential backoff), then the upstream provider directly using
// NASA's public demo-tier key. Successful bodies are cached briefly so
// repeated reads within the staleness window skip the network entirely.
// When every tier fails, a failure record is broadcast to subscribers and
// the last error is returned.
package facade

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gofiber/storage/memory/v2"
	"golang.org/x/sync/errgroup"

	"astrolink/internal/nasa"
	"astrolink/internal/notify"
)

// DemoKey is NASA's public demo-tier API key, used only for the
// direct-upstream tier when the proxy is unreachable.
const DemoKey = "DEMO_KEY"

const (
	callTimeout = 30 * time.Second
	maxRetries  = 2 // retries after the first attempt, proxy tier only
	defaultTTL  = 5 * time.Minute
)

// Facade wraps the proxy's HTTP surface for Go consumers.
type Facade struct {
	base     string // proxy base URL including /api
	client   *nasa.Client
	cache    *memory.Storage
	notifier *notify.Broadcaster
	ttl      time.Duration
}

// New creates a facade for the proxy at baseURL (e.g.
// "http://localhost:5001/api"). notifier may be nil when nobody listens.
func New(baseURL string, notifier *notify.Broadcaster) *Facade {
	return &Facade{
		base:     strings.TrimRight(baseURL, "/"),
		client:   nasa.NewClient(DemoKey, nasa.DefaultEndpoints()),
		cache:    memory.New(),
		notifier: notifier,
		ttl:      defaultTTL,
	}
}

// WithEndpoints overrides the direct-upstream hosts. Tests point these at
// stub servers.
func (f *Facade) WithEndpoints(ep nasa.Endpoints) *Facade {
	f.client = nasa.NewClient(DemoKey, ep)
	return f
}

// WithTTL overrides the staleness window of the response cache.
func (f *Facade) WithTTL(d time.Duration) *Facade {
	f.ttl = d
	return f
}

// strategy is one tier of the fallback chain.
type strategy struct {
	url   string
	kind  nasa.Kind
	retry bool // retry with backoff before giving up on this tier
}

// fetch runs the strategy chain in order until one succeeds. cacheKey
// identifies the logical request; a fresh cached body short-circuits the
// chain entirely.
func (f *Facade) fetch(ctx context.Context, cacheKey string, chain []strategy) ([]byte, error) {
	if body, err := f.cache.Get(cacheKey); err == nil && body != nil {
		return body, nil
	}

	var lastErr error
	lastURL := ""
	for _, s := range chain {
		body, err := f.attempt(ctx, s)
		if err == nil {
			// Best-effort cache write; a failure only costs the next read.
			_ = f.cache.Set(cacheKey, body, f.ttl)
			return body, nil
		}
		lastErr = err
		lastURL = s.url
	}

	f.publishFailure(lastURL, lastErr)
	return nil, lastErr
}

func (f *Facade) attempt(ctx context.Context, s strategy) ([]byte, error) {
	op := func() ([]byte, error) {
		return f.client.Get(ctx, s.kind, s.url, callTimeout)
	}
	if !s.retry {
		return op()
	}

	var body []byte
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	err := backoff.Retry(func() error {
		var err error
		body, err = op()
		// A definitive upstream answer won't change on retry.
		var httpErr *nasa.HTTPError
		if errors.As(err, &httpErr) {
			return backoff.Permanent(err)
		}
		return err
	}, bo)
	return body, err
}

func (f *Facade) publishFailure(failedURL string, err error) {
	if f.notifier == nil || err == nil {
		return
	}
	status := 0
	var httpErr *nasa.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode
	}
	f.notifier.Publish(notify.Failure{
		Message: err.Error(),
		URL:     failedURL,
		Status:  status,
	})
}

func (f *Facade) proxy(kind nasa.Kind, path string, params url.Values) strategy {
	u := f.base + path
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}
	return strategy{url: u, kind: kind, retry: true}
}

func (f *Facade) direct(kind nasa.Kind, rawURL string, params url.Values) strategy {
	u := rawURL
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}
	return strategy{url: u, kind: kind}
}

func vals(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			v.Set(pairs[i], pairs[i+1])
		}
	}
	return v
}

// APOD fetches the astronomy picture of the day.
func (f *Facade) APOD(ctx context.Context, date string) ([]byte, error) {
	ep := f.client.Endpoints()
	return f.fetch(ctx, "apod|"+date, []strategy{
		f.proxy(nasa.KindAPOD, "/apod", vals("date", date)),
		f.direct(nasa.KindAPOD, ep.APIBase+"/planetary/apod", vals("api_key", DemoKey, "date", date)),
	})
}

// MarsPhotos fetches rover photos for a sol.
func (f *Facade) MarsPhotos(ctx context.Context, rover, sol, camera string) ([]byte, error) {
	if rover == "" {
		rover = "curiosity"
	}
	if sol == "" {
		sol = "1000"
	}
	ep := f.client.Endpoints()
	key := fmt.Sprintf("mars-photos|%s|%s|%s", rover, sol, camera)
	return f.fetch(ctx, key, []strategy{
		f.proxy(nasa.KindMarsPhotos, "/mars-photos", vals("rover", rover, "sol", sol, "camera", camera)),
		f.direct(nasa.KindMarsPhotos,
			fmt.Sprintf("%s/mars-photos/api/v1/rovers/%s/photos", ep.APIBase, url.PathEscape(rover)),
			vals("api_key", DemoKey, "sol", sol, "camera", camera)),
	})
}

// NEO fetches the near-Earth object feed.
func (f *Facade) NEO(ctx context.Context, startDate, endDate string) ([]byte, error) {
	ep := f.client.Endpoints()
	return f.fetch(ctx, "neo|"+startDate+"|"+endDate, []strategy{
		f.proxy(nasa.KindNEO, "/neo", vals("start_date", startDate, "end_date", endDate)),
		f.direct(nasa.KindNEO, ep.APIBase+"/neo/rest/v1/feed",
			vals("api_key", DemoKey, "start_date", startDate, "end_date", endDate)),
	})
}

// SpaceWeather fetches DONKI events. The direct tier mirrors the proxy's
// merge: for type "all" both feeds are fetched concurrently and wrapped
// under solarFlares/cmes; a single feed is wrapped with the other side
// empty.
func (f *Facade) SpaceWeather(ctx context.Context, typ string) ([]byte, error) {
	if typ == "" {
		typ = "all"
	}

	cacheKey := "donki|" + typ
	if body, err := f.cache.Get(cacheKey); err == nil && body != nil {
		return body, nil
	}

	proxyTier := f.proxy(nasa.KindDONKI, "/donki", vals("type", typ))
	body, err := f.attempt(ctx, proxyTier)
	if err == nil {
		_ = f.cache.Set(cacheKey, body, f.ttl)
		return body, nil
	}

	body, derr := f.directSpaceWeather(ctx, typ)
	if derr != nil {
		f.publishFailure(proxyTier.url, derr)
		return nil, derr
	}
	_ = f.cache.Set(cacheKey, body, f.ttl)
	return body, nil
}

func (f *Facade) directSpaceWeather(ctx context.Context, typ string) ([]byte, error) {
	base := f.client.Endpoints().APIBase + "/DONKI"
	feed := func(name string) string {
		return base + "/" + name + "?api_key=" + url.QueryEscape(DemoKey)
	}

	empty := json.RawMessage("[]")
	var flares, cmes json.RawMessage

	switch typ {
	case "flr":
		body, err := f.client.Get(ctx, nasa.KindDONKI, feed("FLR"), callTimeout)
		if err != nil {
			return nil, err
		}
		flares, cmes = body, empty
	case "cme":
		body, err := f.client.Get(ctx, nasa.KindDONKI, feed("CME"), callTimeout)
		if err != nil {
			return nil, err
		}
		flares, cmes = empty, body
	default:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			body, err := f.client.Get(gctx, nasa.KindDONKI, feed("FLR"), callTimeout)
			flares = body
			return err
		})
		g.Go(func() error {
			body, err := f.client.Get(gctx, nasa.KindDONKI, feed("CME"), callTimeout)
			cmes = body
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return json.Marshal(map[string]json.RawMessage{
		"solarFlares": flares,
		"cmes":        cmes,
	})
}

// DONKINotifications fetches the notification feed. Proxy tier only; there
// is no direct equivalent worth the demo-key quota.
func (f *Facade) DONKINotifications(ctx context.Context) ([]byte, error) {
	return f.fetch(ctx, "donki-notifications", []strategy{
		f.proxy(nasa.KindDONKINotifications, "/donki/notifications", nil),
	})
}

// EarthImages fetches EPIC imagery.
func (f *Facade) EarthImages(ctx context.Context, date string) ([]byte, error) {
	ep := f.client.Endpoints()
	directURL := ep.APIBase + "/EPIC/api/natural"
	if date != "" {
		directURL += "/date/" + url.PathEscape(date)
	}
	return f.fetch(ctx, "epic|"+date, []strategy{
		f.proxy(nasa.KindEPIC, "/epic", vals("date", date)),
		f.direct(nasa.KindEPIC, directURL, vals("api_key", DemoKey)),
	})
}

// NaturalEvents fetches EONET events.
func (f *Facade) NaturalEvents(ctx context.Context, category, status string, limit int) ([]byte, error) {
	if status == "" {
		status = "open"
	}
	if limit <= 0 {
		limit = 20
	}
	ep := f.client.Endpoints()
	limitStr := fmt.Sprintf("%d", limit)
	key := fmt.Sprintf("eonet|%s|%s|%d", category, status, limit)
	return f.fetch(ctx, key, []strategy{
		f.proxy(nasa.KindEONET, "/eonet", vals("category", category, "status", status, "limit", limitStr)),
		f.direct(nasa.KindEONET, ep.EONETBase+"/api/v3/events",
			vals("category", category, "status", status, "limit", limitStr)),
	})
}

// SearchImages searches the image and video library.
func (f *Facade) SearchImages(ctx context.Context, query, mediaType string) ([]byte, error) {
	if query == "" {
		query = "earth"
	}
	if mediaType == "" {
		mediaType = "image"
	}
	ep := f.client.Endpoints()
	return f.fetch(ctx, "images|"+query+"|"+mediaType, []strategy{
		f.proxy(nasa.KindImages, "/images", vals("q", query, "media_type", mediaType)),
		f.direct(nasa.KindImages, ep.ImagesBase+"/search", vals("q", query, "media_type", mediaType)),
	})
}

// Power fetches climate and solar energy data for a point.
func (f *Facade) Power(ctx context.Context, latitude, longitude, start, end, parameters string) ([]byte, error) {
	ep := f.client.Endpoints()
	key := strings.Join([]string{"power", latitude, longitude, start, end, parameters}, "|")
	return f.fetch(ctx, key, []strategy{
		f.proxy(nasa.KindPower, "/power",
			vals("latitude", latitude, "longitude", longitude, "start", start, "end", end, "parameters", parameters)),
		f.direct(nasa.KindPower, ep.PowerBase+"/api/temporal/daily/point",
			vals("latitude", latitude, "longitude", longitude, "start", start, "end", end,
				"parameters", parameters, "community", "RE", "format", "JSON")),
	})
}

// Techport fetches technology portfolio data. Without a projectId the
// direct tier has no cheap equivalent, so the chain is proxy-only.
func (f *Facade) Techport(ctx context.Context, projectID string) ([]byte, error) {
	ep := f.client.Endpoints()
	chain := []strategy{
		f.proxy(nasa.KindTechport, "/techport", vals("projectId", projectID)),
	}
	if projectID != "" {
		chain = append(chain, f.direct(nasa.KindTechport,
			ep.APIBase+"/techport/api/projects/"+url.PathEscape(projectID),
			vals("api_key", DemoKey)))
	}
	return f.fetch(ctx, "techport|"+projectID, chain)
}

// GIBSCapabilities fetches the WMTS capabilities XML.
func (f *Facade) GIBSCapabilities(ctx context.Context) ([]byte, error) {
	ep := f.client.Endpoints()
	return f.fetch(ctx, "gibs", []strategy{
		f.proxy(nasa.KindGIBS, "/gibs", nil),
		f.direct(nasa.KindGIBS, ep.GIBSBase+"/wmts/epsg4326/best/wmts.cgi",
			vals("SERVICE", "WMTS", "REQUEST", "GetCapabilities")),
	})
}

// SmallBody fetches a small-body database lookup.
func (f *Facade) SmallBody(ctx context.Context, sstr string) ([]byte, error) {
	if sstr == "" {
		sstr = "433"
	}
	ep := f.client.Endpoints()
	return f.fetch(ctx, "sbdb|"+sstr, []strategy{
		f.proxy(nasa.KindSBDB, "/sbdb", vals("sstr", sstr)),
		f.direct(nasa.KindSBDB, ep.SSDBase+"/sbdb.api", vals("sstr", sstr)),
	})
}

// OSDR fetches study file listings. Proxy tier only.
func (f *Facade) OSDR(ctx context.Context, studyID string, page, size int) ([]byte, error) {
	if studyID == "" {
		studyID = "OSD-379"
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	key := fmt.Sprintf("osdr|%s|%d|%d", studyID, page, size)
	return f.fetch(ctx, key, []strategy{
		f.proxy(nasa.KindOSDR, "/osdr",
			vals("studyId", studyID, "page", fmt.Sprintf("%d", page), "size", fmt.Sprintf("%d", size))),
	})
}

// EarthdataCollections searches Earth-observation metadata.
func (f *Facade) EarthdataCollections(ctx context.Context, keyword string, pageSize int) ([]byte, error) {
	if keyword == "" {
		keyword = "MODIS"
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	ep := f.client.Endpoints()
	sizeStr := fmt.Sprintf("%d", pageSize)
	return f.fetch(ctx, "earthdata|"+keyword+"|"+sizeStr, []strategy{
		f.proxy(nasa.KindEarthdata, "/earthdata", vals("keyword", keyword, "page_size", sizeStr)),
		f.direct(nasa.KindEarthdata, ep.CMRBase+"/search/collections.json",
			vals("keyword", keyword, "page_size", sizeStr)),
	})
}

// ADS fetches the (permanently degraded) astrophysics search. Proxy only:
// there is no direct tier without an ADS token.
func (f *Facade) ADS(ctx context.Context, query string, rows int) ([]byte, error) {
	if query == "" {
		query = "black hole"
	}
	if rows <= 0 {
		rows = 10
	}
	return f.fetch(ctx, fmt.Sprintf("ads|%s|%d", query, rows), []strategy{
		f.proxy(nasa.KindADS, "/ads", vals("q", query, "rows", fmt.Sprintf("%d", rows))),
	})
}

// Exoplanets fetches confirmed planets. The direct tier runs a reduced TAP
// query, enough for the dashboard to render names and discovery years.
func (f *Facade) Exoplanets(ctx context.Context, limit int) ([]byte, error) {
	if limit <= 0 {
		limit = 100
	}
	ep := f.client.Endpoints()
	directURL := ep.ExoplanetBase + "/TAP/sync?query=" +
		url.QueryEscape("select pl_name,disc_year from ps") +
		fmt.Sprintf("&format=json&limit=%d", limit)
	return f.fetch(ctx, fmt.Sprintf("exoplanets|%d", limit), []strategy{
		f.proxy(nasa.KindExoplanets, "/exoplanets", vals("limit", fmt.Sprintf("%d", limit))),
		{url: directURL, kind: nasa.KindExoplanets},
	})
}
