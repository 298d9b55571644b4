package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15

// Probe reports whether a dependency can currently serve requests.
type Probe func() bool

// MonitorReadiness runs probe once immediately, then every HEALTHCHECK_TIMER
// seconds until ctx is done, storing each result in ready.
func MonitorReadiness(ctx context.Context, name string, probe Probe, ready *atomic.Bool, metrics *Metrics) {
	check := func() {
		isReady := runProbe(name, probe)
		if ready.Swap(isReady) != isReady {
			slog.Info("[HealthCheck] Readiness changed",
				slog.String("probe", name),
				slog.Bool("ready", isReady))
		}
		if metrics != nil {
			metrics.SetReady(isReady)
		}
		if !isReady {
			slog.Warn("[HealthCheck] Probe is unhealthy", slog.String("probe", name))
		}
	}

	check()

	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

func runProbe(name string, probe Probe) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[HealthCheck] Probe panicked",
				slog.String("probe", name),
				slog.Any("panic", r))
			ok = false
		}
	}()
	return probe()
}
