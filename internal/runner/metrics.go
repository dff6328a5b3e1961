// SPDX-License-Identifier: MIT

package runner

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values of wfg_fronts_total.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics holds the Prometheus collectors of a run on a private registry.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry
	fronts   *prometheus.CounterVec
	duration prometheus.Histogram
	points   prometheus.Histogram
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		fronts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wfg_fronts_total",
			Help: "Fronts processed, by result.",
		}, []string{"result"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wfg_front_duration_seconds",
			Help:    "Wall time of one hypervolume computation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		}),
		points: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wfg_front_points",
			Help:    "Points per front.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
	}
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observe records one front.
func (m *Metrics) Observe(points int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.fronts.WithLabelValues(resultError).Inc()

		return
	}
	m.fronts.WithLabelValues(resultOK).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.points.Observe(float64(points))
}
