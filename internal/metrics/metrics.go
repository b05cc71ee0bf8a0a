package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks extraction call volume and latency, labelled by operation.
type Metrics struct {
	registry *prometheus.Registry

	calls    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sift",
			Name:      "extract_calls_total",
			Help:      "Extraction calls by operation.",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sift",
			Name:      "extract_errors_total",
			Help:      "Failed extraction calls by operation.",
		}, []string{"op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sift",
			Name:      "extract_duration_seconds",
			Help:      "Extraction call duration by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	m.registry.MustRegister(m.calls, m.errors, m.duration)
	return m
}

// Observe records one extraction call.
func (m *Metrics) Observe(op string, elapsed time.Duration, err error) {
	m.calls.WithLabelValues(op).Inc()
	if err != nil {
		m.errors.WithLabelValues(op).Inc()
	}
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
