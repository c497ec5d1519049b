package logger

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/nlog/core"
)

const metricsNamespace = "nlog"

// metrics groups the dispatch counters of a registry.
type metrics struct {
	RecordsTotal    *prometheus.CounterVec
	HandlerFailures prometheus.Counter

	// byLevel holds the resolved RecordsTotal child of each emittable level.
	byLevel [core.SilentLevel]prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		RecordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "records_total",
			Help:      "Number of records dispatched to the handler chain.",
		}, []string{"level"}),
		HandlerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "handler_failures_total",
			Help:      "Number of handler invocations that returned an error or panicked.",
		}),
	}
	for l := range m.byLevel {
		m.byLevel[l] = m.RecordsTotal.WithLabelValues(core.Level(l).String())
	}
	return m
}

func (m *metrics) dispatched(l core.Level) {
	if l >= 0 && int(l) < len(m.byLevel) {
		m.byLevel[l].Inc()
		return
	}
	m.RecordsTotal.WithLabelValues(l.String()).Inc()
}

func (m *metrics) failed(n int) {
	m.HandlerFailures.Add(float64(n))
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.RecordsTotal, m.HandlerFailures}
}
