// Package metrics defines the Prometheus instrumentation for the query
// surfaces.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors shared by the HTTP and MCP adapters.
type Metrics struct {
	Queries  *prometheus.CounterVec
	Duration prometheus.Histogram
}

// New creates and registers the collectors against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bayeux_queries_total",
				Help: "Total number of posterior queries",
			},
			[]string{"status"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "bayeux_query_duration_seconds",
				Help: "Duration of posterior queries",
			},
		),
	}
	reg.MustRegister(m.Queries, m.Duration)
	return m
}
