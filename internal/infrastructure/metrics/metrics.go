// Package metrics exposes Prometheus collectors for HTTP traffic and
// notification dispatch.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "obleafusion"

const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

// Metrics groups the collectors registered on one registry. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
	dispatched         *prometheus.CounterVec
	dispatchLatency    *prometheus.HistogramVec
	rateLimitRejection *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		dispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "notifications_dispatched_total", Help: "Notification dispatch attempts."},
			[]string{"kind", "outcome"},
		),
		dispatchLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "notification_dispatch_duration_seconds",
				Help:    "Notification transport call duration seconds.",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"kind"},
		),
		rateLimitRejection: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "ratelimit_rejections_total", Help: "Requests rejected by the rate limiter."},
			[]string{"route"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpLatency,
		m.dispatched,
		m.dispatchLatency,
		m.rateLimitRejection,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) ObserveDispatch(kind string, delivered bool, dur time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeFailed
	if delivered {
		outcome = OutcomeDelivered
	}
	m.dispatched.WithLabelValues(kind, outcome).Inc()
	m.dispatchLatency.WithLabelValues(kind).Observe(dur.Seconds())
}

func (m *Metrics) ObserveRateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimitRejection.WithLabelValues(route).Inc()
}
