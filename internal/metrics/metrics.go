// Package metrics exposes ingestion counters in the Prometheus text format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns a private Prometheus registry and the ingestion collectors.
// It satisfies service.IngestObserver.
type Registry struct {
	reg      *prometheus.Registry
	rows     *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewRegistry registers the ingestion collectors on a fresh registry, so
// several instances can coexist in one process (tests, mainly).
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	rows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rsvp_ingest_rows_total",
		Help: "Rows processed by ingestion, by outcome.",
	}, []string{"outcome"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rsvp_ingest_runs_total",
		Help: "Ingestion runs, by result.",
	}, []string{"result"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rsvp_ingest_duration_seconds",
		Help:    "Wall time of one ingestion run.",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(rows, runs, duration)
	return &Registry{reg: r, rows: rows, runs: runs, duration: duration}
}

// ObserveRow counts one stored, skipped or rejected row under its outcome label.
func (r *Registry) ObserveRow(outcome string) { r.rows.WithLabelValues(outcome).Inc() }

// ObserveRun counts a finished run under its result label and records how
// long it took.
func (r *Registry) ObserveRun(result string, elapsed time.Duration) {
	r.runs.WithLabelValues(result).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
