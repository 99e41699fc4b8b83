package reportwkr

import (
	"context"
	"runtime"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"go.uber.org/fx"

	"labtrail.dev/backend/internal/app/appconfig"
	"labtrail.dev/backend/internal/constant"
	"labtrail.dev/backend/internal/model"
	modelcache "labtrail.dev/backend/internal/model/cache"
	"labtrail.dev/backend/internal/model/types"
	"labtrail.dev/backend/internal/pkg/observability"
	"labtrail.dev/backend/internal/repo"
	"labtrail.dev/backend/internal/service"
)

type WorkerDeps struct {
	fx.In

	DB            *bun.DB
	LabEventRepo  *repo.LabEvent
	ReportService *service.Report
}

type Worker struct {
	// count is the number of workers
	count int

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	ch := make(chan error)
	// handle & dump errors from workers
	go func() {
		for {
			err := <-ch
			if err != nil {
				log.Error().Err(err).Msg("report worker error")
			}
		}
	}()
	// works like a consumer factory
	reportWorkers := &Worker{
		count:      0,
		WorkerDeps: deps,
	}
	// spawn workers
	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			err := reportWorkers.Consumer(context.Background(), ch)
			if err != nil {
				ch <- err
			}
		}()
		reportWorkers.count += 1
	}
}

func (w *Worker) Consumer(ctx context.Context, ch chan error) error {
	msgChan := make(chan *nats.Msg, 16)

	_, err := w.ReportService.NatsJS.ChanQueueSubscribe("REPORT.*", constant.ReportQueue, msgChan, nats.AckWait(time.Second*10), nats.MaxAckPending(128))
	if err != nil {
		log.Err(err).Msg("failed to subscribe to REPORT.*")
		return err
	}

	for {
		select {
		case msg := <-msgChan:
			func() {
				taskCtx, cancelTask := context.WithDeadline(ctx, time.Now().Add(time.Second*10))
				inprogressInformer := time.AfterFunc(time.Second*5, func() {
					if err := msg.InProgress(); err != nil {
						log.Error().Err(err).Msg("failed to set msg InProgress")
					}
				})
				defer func() {
					inprogressInformer.Stop()
					cancelTask()
					if err := msg.Ack(); err != nil {
						log.Error().Err(err).Msg("failed to ack")
					}
				}()

				start := time.Now()

				reportTask := &types.ReportTask{}
				if err := json.Unmarshal(msg.Data, reportTask); err != nil {
					ch <- err
					return
				}

				err = w.consumeReport(taskCtx, reportTask)
				if err != nil {
					log.Error().
						Err(err).
						Str("taskId", reportTask.TaskID).
						Msg("failed to consume report task")
					w.ReportService.MarkTaskFailed(reportTask.TaskID, err.Error())
					ch <- err
					return
				}

				observability.ReportConsumeDuration.WithLabelValues().Observe(time.Since(start).Seconds())

				w.ReportService.MarkTaskDone(reportTask.TaskID, len(reportTask.Events))
				log.Info().Str("taskId", reportTask.TaskID).Msg("report task processed successfully")
			}()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) consumeReport(ctx context.Context, reportTask *types.ReportTask) error {
	L := log.With().
		Str("taskId", reportTask.TaskID).
		Str("source", reportTask.Source).
		Logger()

	L.Info().Int("events", len(reportTask.Events)).Msg("now processing new report task")

	// reportTask.CreatedAt is in microseconds
	var taskCreatedAt time.Time
	if reportTask.CreatedAt != 0 {
		taskCreatedAt = time.UnixMicro(reportTask.CreatedAt)
	} else {
		taskCreatedAt = time.Now()
	}

	events := make([]*model.LabEvent, 0, len(reportTask.Events))
	for _, event := range reportTask.Events {
		events = append(events, &model.LabEvent{
			Analyte:      event.Analyte,
			CollectedAt:  event.CollectedAt,
			ValueNumeric: event.Value,
			Source:       reportTask.Source,
			CreatedAt:    &taskCreatedAt,
		})
	}

	// transient postgres failures shall not drop a report task on the floor
	err := retry.Do(func() error {
		tx, err := w.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := w.LabEventRepo.BatchSaveEvents(ctx, tx, events); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				L.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
			return err
		}
		return tx.Commit()
	}, retry.Attempts(3), retry.LastErrorOnly(true), retry.Context(ctx))
	if err != nil {
		return err
	}

	// stored aggregates are stale the moment new events land
	if err := modelcache.Flush(); err != nil {
		L.Error().Err(err).Msg("failed to flush caches after ingestion")
	}

	return nil
}
