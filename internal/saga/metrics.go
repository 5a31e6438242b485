package saga

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts saga runs and compensations. A nil *Metrics is a no-op.
type Metrics struct {
	runs          *prometheus.CounterVec
	compensations *prometheus.CounterVec
}

// NewMetrics registers the saga counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "saga_runs_total",
			Help: "Composite write runs by outcome.",
		}, []string{"saga", "outcome"}),
		compensations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "saga_compensations_total",
			Help: "Compensating actions by step and result.",
		}, []string{"saga", "step", "result"}),
	}
}

func (m *Metrics) observeRun(saga, outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(saga, outcome).Inc()
}

func (m *Metrics) observeCompensation(saga, step, result string) {
	if m == nil {
		return
	}
	m.compensations.WithLabelValues(saga, step, result).Inc()
}
