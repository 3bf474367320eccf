package facade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"astrolink/internal/nasa"
	"astrolink/internal/notify"
)

func allEndpoints(base string) nasa.Endpoints {
	return nasa.Endpoints{
		APIBase: base, EONETBase: base, ImagesBase: base,
		PowerBase: base, SSDBase: base, OSDRBase: base,
		CMRBase: base, ExoplanetBase: base, GIBSBase: base,
	}
}

// deadBase returns an URL with nothing listening behind it.
func deadBase() string {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()
	return base
}

func TestProxyTierPreferred(t *testing.T) {
	proxyHits := int32(0)
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&proxyHits, 1)
		w.Write([]byte(`{"title":"from proxy"}`))
	}))
	defer proxy.Close()

	directHits := int32(0)
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&directHits, 1)
		w.Write([]byte(`{"title":"from upstream"}`))
	}))
	defer direct.Close()

	f := New(proxy.URL+"/api", nil).WithEndpoints(allEndpoints(direct.URL))

	body, err := f.APOD(context.Background(), "")
	if err != nil {
		t.Fatalf("APOD failed: %v", err)
	}
	if !strings.Contains(string(body), "from proxy") {
		t.Errorf("expected proxy answer, got %s", body)
	}
	if atomic.LoadInt32(&directHits) != 0 {
		t.Error("direct tier must not be touched while the proxy answers")
	}
}

func TestDirectTierFallback(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != DemoKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"title":"from upstream"}`))
	}))
	defer direct.Close()

	f := New(deadBase()+"/api", nil).WithEndpoints(allEndpoints(direct.URL))

	body, err := f.APOD(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("APOD failed despite live direct tier: %v", err)
	}
	if !strings.Contains(string(body), "from upstream") {
		t.Errorf("expected direct-tier answer, got %s", body)
	}
}

func TestTotalFailurePublishesNotification(t *testing.T) {
	dead := deadBase()
	n := notify.NewBroadcaster()
	ch, cancel := n.Subscribe()
	defer cancel()

	f := New(dead+"/api", n).WithEndpoints(allEndpoints(dead))

	_, err := f.APOD(context.Background(), "")
	if err == nil {
		t.Fatal("expected an error when every tier is down")
	}

	select {
	case failure := <-ch:
		if failure.Message == "" || failure.URL == "" {
			t.Errorf("failure record incomplete: %+v", failure)
		}
		if failure.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Error("failure ID not assigned")
		}
	case <-time.After(time.Second):
		t.Fatal("no failure notification received")
	}
}

func TestStalenessCacheShortCircuits(t *testing.T) {
	hits := int32(0)
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"sstr":"433"}`))
	}))
	defer proxy.Close()

	f := New(proxy.URL+"/api", nil).WithTTL(time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := f.SmallBody(context.Background(), "433"); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected 1 network call within the staleness window, got %d", got)
	}
}

func TestSpaceWeatherDirectMerge(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/DONKI/FLR"):
			w.Write([]byte(`[{"flrID":"f"}]`))
		case strings.Contains(r.URL.Path, "/DONKI/CME"):
			w.Write([]byte(`[{"activityID":"c"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer direct.Close()

	f := New(deadBase()+"/api", nil).WithEndpoints(allEndpoints(direct.URL))

	body, err := f.SpaceWeather(context.Background(), "all")
	if err != nil {
		t.Fatalf("SpaceWeather failed: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("merged body invalid: %v", err)
	}
	if _, ok := m["solarFlares"]; !ok {
		t.Error("missing solarFlares")
	}
	if _, ok := m["cmes"]; !ok {
		t.Error("missing cmes")
	}
}

func TestSpaceWeatherSingleFeedWrapsOtherSideEmpty(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/DONKI/FLR") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"flrID":"f"}]`))
	}))
	defer direct.Close()

	f := New(deadBase()+"/api", nil).WithEndpoints(allEndpoints(direct.URL))

	body, err := f.SpaceWeather(context.Background(), "flr")
	if err != nil {
		t.Fatalf("SpaceWeather failed: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("body invalid: %v", err)
	}
	if string(m["cmes"]) != "[]" {
		t.Errorf("cmes should be empty, got %s", m["cmes"])
	}
	if !strings.Contains(string(m["solarFlares"]), "flrID") {
		t.Errorf("solarFlares missing feed data: %s", m["solarFlares"])
	}
}

func TestProxyErrorStatusSkipsRetry(t *testing.T) {
	proxyHits := int32(0)
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&proxyHits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer proxy.Close()

	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"collection":{}}`))
	}))
	defer direct.Close()

	f := New(proxy.URL+"/api", nil).WithEndpoints(allEndpoints(direct.URL))

	body, err := f.SearchImages(context.Background(), "earth", "image")
	if err != nil {
		t.Fatalf("SearchImages failed: %v", err)
	}
	if !strings.Contains(string(body), "collection") {
		t.Errorf("expected direct answer, got %s", body)
	}
	// A definitive 500 from the proxy is permanent; no backoff retries.
	if got := atomic.LoadInt32(&proxyHits); got != 1 {
		t.Errorf("proxy hit %d times, want 1", got)
	}
}

func TestTechportWithoutProjectIDIsProxyOnly(t *testing.T) {
	directHits := int32(0)
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&directHits, 1)
		w.Write([]byte(`{}`))
	}))
	defer direct.Close()

	f := New(deadBase()+"/api", nil).WithEndpoints(allEndpoints(direct.URL))

	if _, err := f.Techport(context.Background(), ""); err == nil {
		t.Fatal("expected error: no direct tier without a projectId")
	}
	if atomic.LoadInt32(&directHits) != 0 {
		t.Error("direct tier must not be used for the project list")
	}
}
