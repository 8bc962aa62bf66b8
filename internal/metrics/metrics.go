package metrics

import "github.com/prometheus/client_golang/prometheus"

// FormMetrics exposes counters for the booking form lifecycle.
type FormMetrics struct {
	createdTotal     prometheus.Counter
	transitionsTotal *prometheus.CounterVec
}

func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		createdTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bookingform",
			Subsystem: "forms",
			Name:      "created_total",
			Help:      "Total booking form sessions created",
		}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookingform",
			Subsystem: "forms",
			Name:      "transitions_total",
			Help:      "Total form state transitions by operation and outcome",
		}, []string{"operation", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.createdTotal, m.transitionsTotal)
	return m
}

func (m *FormMetrics) ObserveCreated() {
	if m == nil {
		return
	}
	m.createdTotal.Inc()
}

// ObserveTransition records one transition attempt. applied=false means the
// guard held and the operation was a no-op.
func (m *FormMetrics) ObserveTransition(operation string, applied bool) {
	if m == nil {
		return
	}
	outcome := "noop"
	if applied {
		outcome = "applied"
	}
	m.transitionsTotal.WithLabelValues(operation, outcome).Inc()
}
