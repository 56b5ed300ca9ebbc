package observability

import (
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts engine activity in Prometheus collectors.
type Metrics struct {
	Proposals  *prometheus.CounterVec
	Rejections *prometheus.CounterVec
	Commits    prometheus.Counter
	Exhausted  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Proposals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_candidates_proposed_total",
				Help: "Total number of candidates proposed by grow rules",
			},
			[]string{"rule"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_candidates_rejected_total",
				Help: "Total number of candidates vetoed by cut rules",
			},
			[]string{"rule"},
		),
		Commits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_commits_total",
			Help: "Total number of payloads committed by run stages",
		}),
		Exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_stages_exhausted_total",
			Help: "Total number of run stages that harvested nothing",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Proposals, m.Rejections, m.Commits, m.Exhausted)
	}
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGrow: func(e *domain.GrowEvent) {
			m.Proposals.WithLabelValues(e.Rule).Add(float64(e.Candidates))
		},
		OnCut: func(e *domain.CutEvent) {
			m.Rejections.WithLabelValues(e.Rule).Inc()
		},
		OnCommit: func(*domain.StageEvent) {
			m.Commits.Inc()
		},
		OnExhausted: func(*domain.StageEvent) {
			m.Exhausted.Inc()
		},
	}
}
