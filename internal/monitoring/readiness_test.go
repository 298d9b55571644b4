package monitoring

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestMonitorReadiness_RunsProbeImmediately(t *testing.T) {
	req := require.New(t)
	var ready atomic.Bool
	metrics := NewMetrics()
	calls := 0

	MonitorReadiness(cancelledContext(), "report-builder", func() bool {
		calls++
		return true
	}, &ready, metrics)

	req.Equal(1, calls)
	req.True(ready.Load())
	req.Equal(float64(1), testutil.ToFloat64(metrics.Ready))
}

func TestMonitorReadiness_FailingProbe(t *testing.T) {
	req := require.New(t)
	var ready atomic.Bool
	ready.Store(true)

	MonitorReadiness(cancelledContext(), "report-builder", func() bool { return false }, &ready, nil)

	req.False(ready.Load())
}

func TestMonitorReadiness_PanickingProbe(t *testing.T) {
	req := require.New(t)
	var ready atomic.Bool
	metrics := NewMetrics()

	req.NotPanics(func() {
		MonitorReadiness(cancelledContext(), "report-builder", func() bool {
			panic("analyzer exploded")
		}, &ready, metrics)
	})

	req.False(ready.Load())
	req.Equal(float64(0), testutil.ToFloat64(metrics.Ready))
}
