package metrics

import (
	"net/http"
	"strconv"
	"time"

	"minutes-recharge/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recharge"

type Metrics struct {
	gatherer prometheus.Gatherer

	envelopes         *prometheus.CounterVec
	publishFailures   *prometheus.CounterVec
	exchangeFallbacks prometheus.Counter
	requests          *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

var _ usecase.CheckoutMetrics = (*Metrics)(nil)

// New registers every collector on its own registry so tests can build as
// many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: reg,
		envelopes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "envelopes_total",
				Help:      "Checkout envelope requests by outcome",
			},
			[]string{"outcome"},
		),
		publishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_failures_total",
				Help:      "Events that could not be published",
			},
			[]string{"type"},
		),
		exchangeFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exchange_rate_fallbacks_total",
				Help:      "Conversions that used the fallback COP/USD rate",
			},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(
		m.envelopes,
		m.publishFailures,
		m.exchangeFallbacks,
		m.requests,
		m.requestDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) EnvelopeOutcome(outcome string) {
	m.envelopes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PublishFailed(eventType string) {
	m.publishFailures.WithLabelValues(eventType).Inc()
}

func (m *Metrics) ExchangeFallback() {
	m.exchangeFallbacks.Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
