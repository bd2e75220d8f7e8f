package saga

import "time"

// MetricsRecorder records saga runtime metrics.
type MetricsRecorder interface {
	RecordSagaExecution(workflow, status string)
	RecordSagaDuration(workflow, status string, duration time.Duration)
	IncActiveSagas(workflow string)
	DecActiveSagas(workflow string)
	RecordStage(workflow, stage, status string)
	RecordStageDuration(workflow, stage string, duration time.Duration)
	RecordCompensation(workflow, stage, status string)
	RecordBudgetExhaustion(workflow string)
}

type nopMetricsRecorder struct{}

func (n *nopMetricsRecorder) RecordSagaExecution(workflow, status string)                        {}
func (n *nopMetricsRecorder) RecordSagaDuration(workflow, status string, duration time.Duration) {}
func (n *nopMetricsRecorder) IncActiveSagas(workflow string)                                     {}
func (n *nopMetricsRecorder) DecActiveSagas(workflow string)                                     {}
func (n *nopMetricsRecorder) RecordStage(workflow, stage, status string)                         {}
func (n *nopMetricsRecorder) RecordStageDuration(workflow, stage string, duration time.Duration) {}
func (n *nopMetricsRecorder) RecordCompensation(workflow, stage, status string)                  {}
func (n *nopMetricsRecorder) RecordBudgetExhaustion(workflow string)                             {}
