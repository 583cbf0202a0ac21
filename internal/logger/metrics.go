// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "openevolve"
	metricsSubsystem = "log"
	levelLabel       = "level"
)

// Metrics counts the activity of a Sink.
type Metrics struct {
	lines          *prometheus.CounterVec
	droppedLines   *prometheus.CounterVec
	configurations prometheus.Counter
}

// NewMetrics creates the sink counters and registers them on registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "lines_total",
			Help:      "Number of log lines written by the sink, by level.",
		}, []string{levelLabel}),
		droppedLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "lines_dropped_total",
			Help:      "Number of log lines below the sink threshold, by level.",
		}, []string{levelLabel}),
		configurations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "sink_configurations_total",
			Help:      "Number of times the sink has been configured.",
		}),
	}

	for _, collector := range []prometheus.Collector{metrics.lines, metrics.droppedLines, metrics.configurations} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return metrics, nil
}

func (m *Metrics) written(level Level) {
	if m == nil {
		return
	}
	m.lines.WithLabelValues(level.String()).Inc()
}

func (m *Metrics) dropped(level Level) {
	if m == nil {
		return
	}
	m.droppedLines.WithLabelValues(level.String()).Inc()
}

func (m *Metrics) configured() {
	if m == nil {
		return
	}
	m.configurations.Inc()
}
