package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	EnrichmentRuns   prometheus.Counter
	JoinMisses       prometheus.Counter
	UpstreamErrors   prometheus.Counter
	CatalogFailures  prometheus.Counter
	CatalogRebuilds  prometheus.Counter
	StaleRunsDropped prometheus.Counter
	FetchLatencySec  prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	runs := prometheus.NewCounter(prometheus.CounterOpts{Name: "store_enrichment_runs_total"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "store_join_miss_total"})
	upstream := prometheus.NewCounter(prometheus.CounterOpts{Name: "store_upstream_errors_total"})
	catalogFail := prometheus.NewCounter(prometheus.CounterOpts{Name: "store_catalog_build_failures_total"})
	rebuilds := prometheus.NewCounter(prometheus.CounterOpts{Name: "store_catalog_rebuilds_total"})
	stale := prometheus.NewCounter(prometheus.CounterOpts{Name: "store_stale_runs_dropped_total"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_fetch_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(runs, misses, upstream, catalogFail, rebuilds, stale, latency)
	return &Registry{
		reg:              r,
		EnrichmentRuns:   runs,
		JoinMisses:       misses,
		UpstreamErrors:   upstream,
		CatalogFailures:  catalogFail,
		CatalogRebuilds:  rebuilds,
		StaleRunsDropped: stale,
		FetchLatencySec:  latency,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
