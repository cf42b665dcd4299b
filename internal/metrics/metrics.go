// Package metrics holds the Prometheus instruments for label rendering.  All
// collectors are registered with the global registry, so importing this
// package is enough to expose them on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printlabel_renders_total",
			Help: "Labels rendered, by format.",
		}, []string{"format"})

	RenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "printlabel_render_duration_seconds",
			Help:    "Time spent rendering one request, by format.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"format"})

	BatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "printlabel_batch_items",
			Help:    "Items per rendered batch.",
			Buckets: []float64{1, 2, 5, 10, 24, 50, 100, 200},
		})

	RequestErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printlabel_request_errors_total",
			Help: "Rejected render requests, by reason.",
		}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(
		RendersTotal,
		RenderDuration,
		BatchSize,
		RequestErrorsTotal,
	)
}

// Observer feeds render timings into the collectors above.
type Observer struct{}

// ObserveRender records one finished render of items labels.
func (Observer) ObserveRender(format string, items int, elapsed time.Duration) {
	RendersTotal.WithLabelValues(format).Add(float64(items))
	RenderDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	if items > 1 {
		BatchSize.Observe(float64(items))
	}
}

// RejectRequest counts a request refused before rendering.
func RejectRequest(reason string) {
	RequestErrorsTotal.WithLabelValues(reason).Inc()
}
