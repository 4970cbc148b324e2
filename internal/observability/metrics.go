package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the simulator's
// serve mode.
type Metrics struct {
	SimulationsTotal   *prometheus.CounterVec // labels: material
	InvalidInputTotal  *prometheus.CounterVec // labels: param
	SimulationDuration prometheus.Histogram
	HTTPRequestsTotal  *prometheus.CounterVec // labels: route, status
}

// NewMetrics creates and registers all simulator metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SimulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "simulations_total",
			Help:      "Completed impact simulations by impactor material.",
		}, []string{"material"}),
		InvalidInputTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "invalid_input_total",
			Help:      "Rejected simulation requests by offending parameter.",
		}, []string{"param"}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "impact_sim",
			Name:      "simulation_duration_seconds",
			Help:      "Wall time of a single estimation pipeline run.",
			Buckets:   []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1},
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impact_sim",
			Name:      "http_requests_total",
			Help:      "API requests by route and response status.",
		}, []string{"route", "status"}),
	}

	prometheus.MustRegister(
		m.SimulationsTotal,
		m.InvalidInputTotal,
		m.SimulationDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SimulationsTotal:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impact_sim", Name: "simulations_total"}, []string{"material"}),
		InvalidInputTotal:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impact_sim", Name: "invalid_input_total"}, []string{"param"}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "impact_sim", Name: "simulation_duration_seconds"}),
		HTTPRequestsTotal:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "impact_sim", Name: "http_requests_total"}, []string{"route", "status"}),
	}
}
