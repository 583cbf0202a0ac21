// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkMetrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(t, err)

	sink := NewSink(WithTimeFn(fixedClock), WithMetrics(metrics))
	require.NoError(t, sink.Configure("", "INFO"))
	require.NoError(t, sink.Configure("", "WARNING"))

	component := NewComponent(sink, "node")
	component.Debug("dropped")
	component.Info("dropped")
	component.Step("dropped")
	component.Warning("written")
	component.Error("written")
	component.Error("written")

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.configurations), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.droppedLines.WithLabelValues("DEBUG")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.droppedLines.WithLabelValues("INFO")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.lines.WithLabelValues("WARNING")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.lines.WithLabelValues("ERROR")), 0)
}

func TestNewMetricsRegisterTwice(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	_, err := NewMetrics(registry)
	require.NoError(t, err)

	_, err = NewMetrics(registry)
	require.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var metrics *Metrics
	assert.NotPanics(t, func() {
		metrics.written(INFO)
		metrics.dropped(DEBUG)
		metrics.configured()
	})
}
