package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// initSagaMetrics initializes saga execution metrics. Label cardinality
// is bounded: workflows and stages are fixed sets defined in code.
func (m *Manager) initSagaMetrics(cfg Config) {
	m.sagaExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_executions_total",
			Help: "Total number of saga executions by workflow and terminal status",
		},
		[]string{"workflow", "status"},
	)

	m.sagaDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "saga_duration_seconds",
			Help:    "Saga execution duration in seconds",
			Buckets: cfg.SagaDurationBuckets,
		},
		[]string{"workflow", "status"},
	)

	m.sagaActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "saga_active_count",
			Help: "Current number of saga executions in flight",
		},
		[]string{"workflow"},
	)

	m.sagaStages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_stages_total",
			Help: "Total number of forward stage executions by outcome",
		},
		[]string{"workflow", "stage", "status"},
	)

	m.stageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "saga_stage_duration_seconds",
			Help:    "Forward stage duration in seconds",
			Buckets: cfg.StageDurationBuckets,
		},
		[]string{"workflow", "stage"},
	)

	m.compensations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_compensations_total",
			Help: "Total number of compensation calls by outcome",
		},
		[]string{"workflow", "stage", "status"},
	)

	m.budgetExhausted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_budget_exhaustions_total",
			Help: "Total number of sagas aborted by an exhausted time budget",
		},
		[]string{"workflow"},
	)

	m.registry.MustRegister(m.sagaExecutions)
	m.registry.MustRegister(m.sagaDuration)
	m.registry.MustRegister(m.sagaActive)
	m.registry.MustRegister(m.sagaStages)
	m.registry.MustRegister(m.stageDuration)
	m.registry.MustRegister(m.compensations)
	m.registry.MustRegister(m.budgetExhausted)
}

// RecordSagaExecution records one saga execution outcome.
func (m *Manager) RecordSagaExecution(workflow, status string) {
	if !m.enabled {
		return
	}
	m.sagaExecutions.WithLabelValues(workflow, status).Inc()
}

// RecordSagaDuration records saga execution latency.
func (m *Manager) RecordSagaDuration(workflow, status string, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.sagaDuration.WithLabelValues(workflow, status).Observe(duration.Seconds())
}

// IncActiveSagas increments the active saga count for a workflow.
func (m *Manager) IncActiveSagas(workflow string) {
	if !m.enabled {
		return
	}
	m.sagaActive.WithLabelValues(workflow).Inc()
}

// DecActiveSagas decrements the active saga count for a workflow.
func (m *Manager) DecActiveSagas(workflow string) {
	if !m.enabled {
		return
	}
	m.sagaActive.WithLabelValues(workflow).Dec()
}

// RecordStage records one forward stage outcome.
func (m *Manager) RecordStage(workflow, stage, status string) {
	if !m.enabled {
		return
	}
	m.sagaStages.WithLabelValues(workflow, stage, status).Inc()
}

// RecordStageDuration records forward stage latency.
func (m *Manager) RecordStageDuration(workflow, stage string, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.stageDuration.WithLabelValues(workflow, stage).Observe(duration.Seconds())
}

// RecordCompensation records one compensation call outcome.
func (m *Manager) RecordCompensation(workflow, stage, status string) {
	if !m.enabled {
		return
	}
	m.compensations.WithLabelValues(workflow, stage, status).Inc()
}

// RecordBudgetExhaustion records a saga aborted because its time budget
// ran out before the forward stages finished.
func (m *Manager) RecordBudgetExhaustion(workflow string) {
	if !m.enabled {
		return
	}
	m.budgetExhausted.WithLabelValues(workflow).Inc()
}
