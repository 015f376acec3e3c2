package flow

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus instruments for the flow service. A nil
// *Metrics is a no-op, so instrumentation stays optional.
type Metrics struct {
	saves        *prometheus.CounterVec
	loads        prometheus.Counter
	saveDuration prometheus.Histogram
}

// NewMetrics creates and registers the flow service instruments.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		saves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solarflow_saves_total",
				Help: "Flow save attempts by result (ok, invalid, conflict, error).",
			},
			[]string{"result"},
		),
		loads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "solarflow_loads_total",
				Help: "Flow document loads.",
			},
		),
		saveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "solarflow_save_duration_seconds",
				Help:    "Latency of successful store writes.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.saves, m.loads, m.saveDuration)
	return m
}

func (m *Metrics) incSave(result string) {
	if m == nil {
		return
	}
	m.saves.WithLabelValues(result).Inc()
}

func (m *Metrics) incLoad() {
	if m == nil {
		return
	}
	m.loads.Inc()
}

func (m *Metrics) observeSave(d time.Duration) {
	if m == nil {
		return
	}
	m.saveDuration.Observe(d.Seconds())
}
