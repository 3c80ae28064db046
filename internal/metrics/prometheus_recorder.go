package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder on a prometheus registry.
type PrometheusRecorder struct {
	reads    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	writes   *prometheus.CounterVec
	skips    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPrometheusRecorder registers the sitegen collectors on reg.
func NewPrometheusRecorder(reg *prometheus.Registry) *PrometheusRecorder {
	r := &PrometheusRecorder{
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitegen_documents_read_total",
			Help: "Documents successfully resolved, by collection.",
		}, []string{"collection"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitegen_read_errors_total",
			Help: "Read-phase errors, by category.",
		}, []string{"category"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitegen_documents_written_total",
			Help: "Output files written, by collection.",
		}, []string{"collection"}),
		skips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitegen_documents_skipped_total",
			Help: "Documents skipped by the incremental check, by collection.",
		}, []string{"collection"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sitegen_build_duration_seconds",
			Help:    "Build wall time in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
	}
	reg.MustRegister(r.reads, r.errors, r.writes, r.skips, r.duration)
	return r
}

func (r *PrometheusRecorder) DocumentRead(collection string)    { r.reads.WithLabelValues(collection).Inc() }
func (r *PrometheusRecorder) ReadError(category string)         { r.errors.WithLabelValues(category).Inc() }
func (r *PrometheusRecorder) DocumentWritten(collection string) { r.writes.WithLabelValues(collection).Inc() }
func (r *PrometheusRecorder) DocumentSkipped(collection string) { r.skips.WithLabelValues(collection).Inc() }
func (r *PrometheusRecorder) BuildCompleted(seconds float64)    { r.duration.Observe(seconds) }

// Handler returns the /metrics HTTP handler for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
