package calcwkr

import (
	"time"

	"labtrail.dev/backend/internal/pkg/observability"
)

func observeCalcDuration(service string, f func() error) error {
	start := time.Now()
	defer func() {
		dur := time.Since(start)
		observability.WorkerCalcDuration.WithLabelValues(service).Set(float64(dur.Seconds()))
	}()
	return f()
}
