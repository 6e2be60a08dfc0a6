// Package metrics registers the Prometheus counters exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the application-level counters. A single instance is created
// at startup and shared through the app container.
type Metrics struct {
	// applicationsTotal counts submitted applications by opportunity type.
	applicationsTotal *prometheus.CounterVec
	// eligibilityDenialsTotal counts refused application attempts by reason.
	eligibilityDenialsTotal *prometheus.CounterVec
	// statusTransitionsTotal counts review-pipeline moves by target status.
	statusTransitionsTotal *prometheus.CounterVec
	// opportunityViewsTotal counts detail-page views by viewer tier.
	opportunityViewsTotal *prometheus.CounterVec
}

// New creates and registers the counters with the default registry.
// MustRegister panics on duplicate names, which only happens if New is
// called twice in one process.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the counters with a caller-supplied registry.
// Tests use this with a fresh prometheus.NewRegistry per instance.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		applicationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nextintern_applications_total",
				Help: "Total applications submitted, by opportunity type",
			},
			[]string{"opportunity_type"},
		),
		eligibilityDenialsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nextintern_eligibility_denials_total",
				Help: "Total refused application attempts, by denial reason",
			},
			[]string{"reason"},
		),
		statusTransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nextintern_status_transitions_total",
				Help: "Total application status transitions, by target status",
			},
			[]string{"to_status"},
		),
		opportunityViewsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nextintern_opportunity_views_total",
				Help: "Total opportunity detail views, by viewer tier",
			},
			[]string{"tier"},
		),
	}

	reg.MustRegister(
		m.applicationsTotal,
		m.eligibilityDenialsTotal,
		m.statusTransitionsTotal,
		m.opportunityViewsTotal,
	)

	return m
}

func (m *Metrics) RecordApplication(opportunityType string) {
	m.applicationsTotal.WithLabelValues(opportunityType).Inc()
}

func (m *Metrics) RecordDenial(reason string) {
	m.eligibilityDenialsTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordTransition(toStatus string) {
	m.statusTransitionsTotal.WithLabelValues(toStatus).Inc()
}

func (m *Metrics) RecordView(tier string) {
	m.opportunityViewsTotal.WithLabelValues(tier).Inc()
}
