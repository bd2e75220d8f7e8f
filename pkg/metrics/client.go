package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// initClientMetrics initializes downstream client metrics. Services are
// the fixed set of marketplace microservices the coordinator calls.
func (m *Manager) initClientMetrics(cfg Config) {
	m.clientRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "downstream_requests_total",
			Help: "Total number of downstream requests by service, method and status code",
		},
		[]string{"service", "method", "status"},
	)

	m.clientDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "downstream_request_duration_seconds",
			Help:    "Downstream request duration in seconds",
			Buckets: cfg.ClientDurationBuckets,
		},
		[]string{"service", "method"},
	)

	m.clientInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "downstream_requests_in_flight",
			Help: "Current number of downstream requests in flight",
		},
		[]string{"service"},
	)

	m.registry.MustRegister(m.clientRequests)
	m.registry.MustRegister(m.clientDuration)
	m.registry.MustRegister(m.clientInFlight)
}

// ClientInFlight adjusts the in-flight gauge for a downstream service.
func (m *Manager) ClientInFlight(service string, delta int) {
	if !m.enabled {
		return
	}
	m.clientInFlight.WithLabelValues(service).Add(float64(delta))
}

// ObserveClient records one finished downstream exchange. Status zero
// means the request produced no response; it is labelled "error".
func (m *Manager) ObserveClient(service, method string, status int, elapsed time.Duration) {
	if !m.enabled {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.clientRequests.WithLabelValues(service, method, label).Inc()
	m.clientDuration.WithLabelValues(service, method).Observe(elapsed.Seconds())
}
