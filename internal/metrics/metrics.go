// Package metrics exposes Prometheus collectors for chart rendering.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "teambubbles"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// UnknownFormat labels renders whose format has no renderer.
const UnknownFormat = "unknown"

type Metrics struct {
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	teams          prometheus.Gauge
	tasks          prometheus.Gauge
}

// New registers the collectors on registerer. Pass a fresh registry in tests
// to avoid duplicate registration against the default one.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "renders_total",
				Help:      "Number of chart requests by format and outcome.",
			},
			[]string{"format", "status"},
		),
		renderDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "render_duration_seconds",
				Help:      "Time spent loading tasks and rendering a chart.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"format"},
		),
		teams: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "teams",
			Help:      "Number of teams in the most recent aggregation.",
		}),
		tasks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks",
			Help:      "Number of tasks read in the most recent aggregation.",
		}),
	}
}

func (m *Metrics) ObserveRender(format string, started time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}

	m.renders.WithLabelValues(format, status).Inc()
	m.renderDuration.WithLabelValues(format).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveAggregation(tasks, teams int) {
	m.tasks.Set(float64(tasks))
	m.teams.Set(float64(teams))
}
