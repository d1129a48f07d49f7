package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса: входящие HTTP-запросы и исходящие
// обращения к внешним хранилищам
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	StoreRequestsTotal   *prometheus.CounterVec
	StoreRequestDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: constLabels,
		}),

		StoreRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "store_requests_total",
			Help:        "Total number of outbound requests to external stores",
			ConstLabels: constLabels,
		}, []string{"store", "method", "outcome"}),

		StoreRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "store_request_duration_seconds",
			Help:        "Outbound store request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"store", "method"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный входящий запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStoreRequest фиксирует исходящий запрос к внешнему хранилищу
func (m *Metrics) ObserveStoreRequest(store, method, outcome string, duration time.Duration) {
	m.StoreRequestsTotal.WithLabelValues(store, method, outcome).Inc()
	m.StoreRequestDuration.WithLabelValues(store, method).Observe(duration.Seconds())
}
