// Package metrics exposes Prometheus instrumentation for conversions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeFatal        = "fatal"
	OutcomeConstruction = "construction"
	OutcomeCanceled     = "canceled"
)

// Metrics provides observability for the conversion pipeline. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	// Conversions by profile and outcome
	Conversions *prometheus.CounterVec

	// Soft issues by code
	SoftIssues *prometheus.CounterVec

	// Stage latency by stage id
	StageDuration *prometheus.HistogramVec
}

// New registers the conversion metrics with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Conversions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "iso19115_conversions_total",
			Help: "Total conversions by profile and outcome",
		}, []string{"profile", "outcome"}),

		SoftIssues: f.NewCounterVec(prometheus.CounterOpts{
			Name: "iso19115_soft_issues_total",
			Help: "Field-level issues recorded during conversion, by code",
		}, []string{"code"}),

		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iso19115_stage_duration_seconds",
			Help:    "Duration of individual conversion stages",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}, []string{"stage"}),
	}
}

// IncrementConversion records the outcome of one conversion.
func (m *Metrics) IncrementConversion(profile, outcome string) {
	if m != nil {
		m.Conversions.WithLabelValues(profile, outcome).Inc()
	}
}

// IncrementSoftIssue records a soft issue.
func (m *Metrics) IncrementSoftIssue(code string) {
	if m != nil {
		m.SoftIssues.WithLabelValues(code).Inc()
	}
}

// ObserveStage records the duration of a stage run.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
	}
}
