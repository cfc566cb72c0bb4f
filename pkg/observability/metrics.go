// Package observability exposes Prometheus metrics for the dispatch
// core.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates the bridge's Prometheus collectors.
type Metrics struct {
	commands    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	gateWaits   prometheus.Counter
	gateTimeout prometheus.Counter
}

// NewMetrics registers the collectors on reg. A nil reg uses the
// default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unityforge_commands_total",
			Help: "Dispatched commands by category, operation and status.",
		}, []string{"category", "operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unityforge_command_duration_seconds",
			Help:    "Command execution time including the compilation gate.",
			Buckets: prometheus.DefBuckets,
		}, []string{"category", "operation"}),
		gateWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unityforge_compilation_waits_total",
			Help: "Commands that waited on the compilation gate.",
		}),
		gateTimeout: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unityforge_compilation_wait_timeouts_total",
			Help: "Gate waits that hit the ceiling and proceeded anyway.",
		}),
	}
	reg.MustRegister(m.commands, m.duration, m.gateWaits, m.gateTimeout)
	return m
}

// ObserveCommand records one dispatched command.
func (m *Metrics) ObserveCommand(category, operation string, success bool, elapsed time.Duration) {
	status := "ok"
	if !success {
		status = "error"
	}
	m.commands.WithLabelValues(category, operation, status).Inc()
	m.duration.WithLabelValues(category, operation).Observe(elapsed.Seconds())
}

// ObserveGateWait records a gate passage that actually waited.
func (m *Metrics) ObserveGateWait(timedOut bool) {
	m.gateWaits.Inc()
	if timedOut {
		m.gateTimeout.Inc()
	}
}
