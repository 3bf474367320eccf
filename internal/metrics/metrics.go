package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astrolink_requests_total",
			Help: "Proxied requests by data kind and resolution outcome",
		},
		[]string{"kind", "outcome"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astrolink_upstream_duration_seconds",
			Help:    "Upstream call latency by data kind",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"kind"},
	)
)

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(requestsTotal, upstreamDuration)
	})
}

// RecordRequest counts one resolved request. Outcome is one of "success",
// "secondary", "fallback", "error".
func RecordRequest(kind, outcome string) {
	requestsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveUpstream records the latency of a single upstream call.
func ObserveUpstream(kind string, d time.Duration) {
	upstreamDuration.WithLabelValues(kind).Observe(d.Seconds())
}
