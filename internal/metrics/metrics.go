// Package metrics exposes Prometheus collectors for shell navigation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sahayak"

// Metrics owns a registry with the navigation collectors.
type Metrics struct {
	registry       *prometheus.Registry
	navigations    *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	liveSessions   prometheus.Gauge
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Shell renders by page, trigger and outcome.",
		}, []string{"page", "source", "outcome"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent matching and rendering a path.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"source"}),
		liveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_sessions",
			Help:      "Open live navigation connections.",
		}),
	}

	m.registry.MustRegister(
		m.navigations,
		m.renderDuration,
		m.liveSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordNavigation counts one render.
func (m *Metrics) RecordNavigation(page, source string, found bool, elapsed time.Duration) {
	outcome := "found"
	if !found {
		outcome = "not_found"
	}
	m.navigations.WithLabelValues(page, source, outcome).Inc()
	m.renderDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// LiveSessionOpened increments the open live connection gauge.
func (m *Metrics) LiveSessionOpened() {
	m.liveSessions.Inc()
}

// LiveSessionClosed decrements the open live connection gauge.
func (m *Metrics) LiveSessionClosed() {
	m.liveSessions.Dec()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
