package service

import (
	"context"
	"time"

	"github.com/dchest/uniuri"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"labtrail.dev/backend/internal/app/appconfig"
	"labtrail.dev/backend/internal/constant"
	"labtrail.dev/backend/internal/model/types"
	"labtrail.dev/backend/internal/pkg/lterr"
	"labtrail.dev/backend/internal/pkg/taskstore"
)

type Report struct {
	NatsJS    nats.JetStreamContext
	TaskStore *taskstore.Store[*types.ReportTaskStatus]
}

func NewReport(conf *appconfig.Config, natsJs nats.JetStreamContext) *Report {
	return &Report{
		NatsJS:    natsJs,
		TaskStore: taskstore.New[*types.ReportTaskStatus](conf.ReportTaskTTL),
	}
}

// SubmitReport accepts an already-validated lab report, queues it for
// ingestion and returns the task id the submitter can poll for status.
func (s *Report) SubmitReport(ctx context.Context, req *types.ReportRequest) (string, error) {
	task := &types.ReportTask{
		TaskID:    uniuri.NewLen(32),
		Source:    req.Source,
		Events:    req.Events,
		CreatedAt: time.Now().UnixMicro(),
	}

	b, err := json.Marshal(task)
	if err != nil {
		return "", err
	}

	s.TaskStore.Put(task.TaskID, &types.ReportTaskStatus{
		TaskID:     task.TaskID,
		Status:     constant.TaskStatusPending,
		EventCount: len(task.Events),
	})

	_, err = s.NatsJS.Publish(constant.ReportSubject, b, nats.MsgId(task.TaskID))
	if err != nil {
		log.Error().Err(err).Str("taskId", task.TaskID).Msg("failed to publish report task")
		s.TaskStore.Delete(task.TaskID)
		return "", err
	}

	return task.TaskID, nil
}

func (s *Report) GetTaskStatus(taskID string) (*types.ReportTaskStatus, error) {
	status, ok := s.TaskStore.Get(taskID)
	if !ok {
		return nil, lterr.ErrNotFound
	}
	return status, nil
}

func (s *Report) MarkTaskDone(taskID string, eventCount int) {
	s.TaskStore.Put(taskID, &types.ReportTaskStatus{
		TaskID:     taskID,
		Status:     constant.TaskStatusDone,
		EventCount: eventCount,
	})
}

func (s *Report) MarkTaskFailed(taskID string, reason string) {
	s.TaskStore.Put(taskID, &types.ReportTaskStatus{
		TaskID: taskID,
		Status: constant.TaskStatusFailed,
		Error:  reason,
	})
}
