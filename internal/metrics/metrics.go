// Package metrics holds the prometheus collectors for the items client and server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "itemlist"

// Metrics contains the collectors registered by New.
type Metrics struct {
	registry *prometheus.Registry

	// Client side
	ClientAttempts *prometheus.CounterVec
	ClientCalls    *prometheus.CounterVec

	// Server side
	HTTPRequests *prometheus.CounterVec
	ItemsCreated prometheus.Counter
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		ClientAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "attempts_total",
				Help:      "Individual request attempts made by the items client",
			},
			[]string{"op", "status"},
		),

		ClientCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "calls_total",
				Help:      "Logical client calls by final outcome, after retries",
			},
			[]string{"op", "outcome"},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests served by the items API",
			},
			[]string{"method", "status"},
		),

		ItemsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "items",
				Name:      "created_total",
				Help:      "Items created through the API",
			},
		),
	}

	m.registry.MustRegister(m.ClientAttempts, m.ClientCalls, m.HTTPRequests, m.ItemsCreated)
	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the registry behind Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
