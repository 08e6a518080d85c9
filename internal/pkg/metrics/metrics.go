// Package metrics holds the domain Prometheus collectors shared by the
// usecases and the worker. Collectors are built per Registerer so tests can
// use a private registry instead of the process default.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dish"

// Pipeline outcome labels.
const (
	OutcomeSuccess   = "success"
	OutcomeRetry     = "retry"
	OutcomeTerminal  = "terminal"
	OutcomeExhausted = "exhausted"
)

// Allocation result labels.
const (
	AllocationGranted        = "granted"
	AllocationReplayed       = "replayed"
	AllocationPersonalLimit  = "personal_limit"
	AllocationGlobalCapacity = "global_capacity"
	AllocationRejected       = "rejected"
)

type Metrics struct {
	PipelineOutcomes      *prometheus.CounterVec
	StageSeconds          *prometheus.HistogramVec
	SlotAllocations       *prometheus.CounterVec
	ReservationsReclaimed prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PipelineOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pipeline_outcomes_total",
				Help:      "Pipeline job attempts by outcome.",
			},
			[]string{"outcome"},
		),
		StageSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "pipeline_stage_seconds",
				Help:      "Duration of pipeline stages in seconds.",
				Buckets:   []float64{0.05, 0.25, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"stage"},
		),
		SlotAllocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slot_allocations_total",
				Help:      "Slot reservation attempts by slot type and result.",
			},
			[]string{"slot_type", "result"},
		),
		ReservationsReclaimed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_reclaimed_total",
				Help:      "Reservations released after their TTL lapsed.",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.PipelineOutcomes, m.StageSeconds, m.SlotAllocations, m.ReservationsReclaimed)
	}
	return m
}

// NewNop returns unregistered collectors.
func NewNop() *Metrics {
	return New(nil)
}

func (m *Metrics) ObserveAllocation(slotType, result string) {
	m.SlotAllocations.WithLabelValues(slotType, result).Inc()
}

func (m *Metrics) ObserveReclaimed(n int) {
	if n > 0 {
		m.ReservationsReclaimed.Add(float64(n))
	}
}

func (m *Metrics) ObserveOutcome(outcome string) {
	m.PipelineOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStage(stage string, seconds float64) {
	m.StageSeconds.WithLabelValues(stage).Observe(seconds)
}
