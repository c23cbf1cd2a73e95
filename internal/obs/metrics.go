package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the GraphQL endpoint's Prometheus collectors. Every collector
// is labelled by operation type: query, mutation or unknown.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	Errors   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphql_requests_total",
				Help: "Total number of GraphQL requests received.",
			},
			[]string{"operation"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphql_request_duration_seconds",
				Help:    "Latency of GraphQL requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphql_errors_total",
				Help: "Total number of GraphQL errors returned.",
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.Requests, m.Latency, m.Errors)
	return m
}
