package calcwkr

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"labtrail.dev/backend/internal/app/appconfig"
	"labtrail.dev/backend/internal/service"
)

type WorkerDeps struct {
	fx.In

	AnalyteService *service.Analyte
	PivotService   *service.Pivot
}

type Worker struct {
	// count counts batches the worker has completed so far
	count int

	// interval describes the interval in-between different batches of warm-up runs
	interval time.Duration

	// timeout bounds a single warm-up batch
	timeout time.Duration

	// heartbeatURL allows an external monitor to know the worker is alive
	heartbeatURL string

	// lock ensures only one instance runs warm-up batches at a time
	lock *redsync.Mutex

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps, lock *redsync.Redsync) {
	if !conf.WorkerEnabled {
		log.Info().Msg("worker is disabled due to configuration")
		return
	}
	(&Worker{
		interval:     conf.WorkerInterval,
		timeout:      conf.WorkerTimeout,
		heartbeatURL: conf.WorkerHeartbeatURL,
		lock:         lock.NewMutex("mutex:calcwkr", redsync.WithExpiry(30*time.Minute), redsync.WithTries(2)),
		WorkerDeps:   deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			if err := w.batch(ctx); err != nil {
				log.Error().Err(err).Int("count", w.count).Msg("worker batch failed")
			} else {
				w.heartbeat()
			}

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

func (w *Worker) batch(ctx context.Context) error {
	if err := w.lock.Lock(); err != nil {
		log.Info().Err(err).Msg("worker batch already running elsewhere, skipping")
		return nil
	}
	defer w.lock.Unlock()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	log.Info().Int("count", w.count).Msg("worker batch started")

	log.Info().Str("service", "AnalyteService").Msg("worker calculating")
	if err := observeCalcDuration("analyte", func() error {
		_, err := w.AnalyteService.ListAnalytes(ctx)
		return err
	}); err != nil {
		return errors.Wrap(err, "failed to warm up analyte catalog")
	}

	log.Info().Str("service", "PivotService").Msg("worker calculating")
	if err := observeCalcDuration("pivot", func() error {
		_, err := w.PivotService.GetPivotTable(ctx)
		return err
	}); err != nil {
		return errors.Wrap(err, "failed to warm up pivot table")
	}

	log.Info().Int("count", w.count).Msg("worker batch finished")
	return nil
}

func (w *Worker) heartbeat() {
	if w.heartbeatURL == "" {
		return
	}
	resp, err := http.Get(w.heartbeatURL)
	if err != nil {
		log.Error().Err(err).Msg("worker heartbeat failed")
		return
	}
	defer resp.Body.Close()
}

func (w *Worker) Count() int {
	return w.count
}
