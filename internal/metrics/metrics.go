// Package metrics exposes the process's Prometheus collectors: request
// counts and latency by route, plus registry-shape gauges (namespace
// count, total entries, dirty namespaces) refreshed on demand from the
// store. Mirrors the way the teacher wires a single package-level
// registry and hands handlers a promhttp.Handler for /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arnav-k/autocompleted/internal/store"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autocompleted_requests_total",
		Help: "Total HTTP requests, by route and status code.",
	}, []string{"route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autocompleted_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	NamespaceCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "autocompleted_namespaces",
		Help: "Current number of namespaces held in the registry.",
	})

	EntryCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "autocompleted_entries",
		Help: "Current total number of entries across all namespaces.",
	})

	DirtyNamespaceCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "autocompleted_dirty_namespaces",
		Help: "Number of namespaces with unsnapshotted writes.",
	})

	SnapshotWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autocompleted_snapshot_writes_total",
		Help: "Total namespace snapshot writes, by outcome.",
	}, []string{"outcome"})
)

// ObserveRequest records one HTTP request's outcome and latency.
func ObserveRequest(route string, status int, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler returns the promhttp handler to mount at the metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RefreshGauges recomputes the registry-shape gauges from st. Called
// once per /metrics scrape rather than on every store mutation, since
// the gauges are cheap to recompute and this avoids touching the
// registry lock on the hot write path.
func RefreshGauges(st *store.Store) {
	namespaces := st.AllNamespaces()
	NamespaceCount.Set(float64(len(namespaces)))

	var total int
	var dirty int
	for _, ns := range namespaces {
		total += ns.Len()
		if ns.Dirty() > 0 {
			dirty++
		}
	}
	EntryCount.Set(float64(total))
	DirtyNamespaceCount.Set(float64(dirty))
}
