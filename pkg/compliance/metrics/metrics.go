// Package metrics instruments compliance record dispatch. The
// classifier and action views stay pure; only the dispatcher counts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RecordsProcessed    *prometheus.CounterVec
	UnrecognizedRecords prometheus.Counter
}

// New registers the compliance metrics with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the compliance metrics with the given registry.
// Tests pass a fresh prometheus.NewRegistry to avoid duplicate
// registration across cases.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "decahose_compliance_records_processed_total",
			Help: "Total number of compliance records classified, by action class",
		}, []string{"class"}),
		UnrecognizedRecords: factory.NewCounter(prometheus.CounterOpts{
			Name: "decahose_compliance_unrecognized_records_total",
			Help: "Total number of records that failed classification",
		}),
	}
}

func (m *Metrics) IncrementProcessed(class string) {
	m.RecordsProcessed.WithLabelValues(class).Inc()
}

func (m *Metrics) IncrementUnrecognized() {
	m.UnrecognizedRecords.Inc()
}
