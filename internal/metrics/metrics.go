// Package metrics exposes Prometheus metrics for model construction.
//
// qpce runs as a one-shot batch job, so metrics are not scraped: the CLI
// writes them in the text exposition format for the node exporter textfile
// collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all construction metrics
type Registry struct {
	registry *prometheus.Registry

	RoutersBuilt     prometheus.Counter
	LinksBuilt       prometheus.Counter
	PathsBuilt       prometheus.Counter
	DocumentsTotal   *prometheus.CounterVec
	BuildErrorsTotal *prometheus.CounterVec
	StageDuration    *prometheus.HistogramVec
	LastSuccess      prometheus.Gauge
}

// NewRegistry creates a registry with every metric initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.RoutersBuilt = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "qpce_routers_built_total",
			Help: "Total number of routers added to networks",
		},
	)

	r.LinksBuilt = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "qpce_links_built_total",
			Help: "Total number of links added to networks",
		},
	)

	r.PathsBuilt = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "qpce_paths_built_total",
			Help: "Total number of paths added to demands",
		},
	)

	r.DocumentsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qpce_documents_total",
			Help: "Documents processed by type and result",
		},
		[]string{"document", "result"}, // network|demand, ok|error
	)

	r.BuildErrorsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qpce_build_errors_total",
			Help: "Construction failures by stage and error kind",
		},
		[]string{"stage", "kind"},
	)

	r.StageDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qpce_stage_duration_seconds",
			Help:    "Duration of construction stages in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
		[]string{"stage"},
	)

	r.LastSuccess = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "qpce_last_success_timestamp_seconds",
			Help: "Unix time of the last fully successful construction",
		},
	)

	return r
}

// RecordStage records the duration of a completed stage
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordError records a construction failure
func (r *Registry) RecordError(stage, kind string) {
	r.BuildErrorsTotal.WithLabelValues(stage, kind).Inc()
}

// RecordDocument records a processed document
func (r *Registry) RecordDocument(document string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.DocumentsTotal.WithLabelValues(document, result).Inc()
}

// MarkSuccess stamps the last successful construction time
func (r *Registry) MarkSuccess(at time.Time) {
	r.LastSuccess.Set(float64(at.Unix()))
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
