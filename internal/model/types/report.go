package types

import (
	"gopkg.in/guregu/null.v3"
)

// ReportRequest is the ingestion payload: a batch of measurements from one
// source (a parsed lab report, a manual entry form, a device export).
type ReportRequest struct {
	Source string         `json:"source" validate:"required,max=64"`
	Events []*ReportEvent `json:"events" validate:"required,min=1,max=1000,dive"`
}

type ReportEvent struct {
	Analyte     string     `json:"analyte" validate:"required,max=128"`
	CollectedAt string     `json:"collectedAt" validate:"required,max=64"`
	Value       null.Float `json:"value"`
}

// ReportTask is the queue message and status record for one accepted report.
type ReportTask struct {
	TaskID    string         `json:"taskId"`
	Source    string         `json:"source"`
	Events    []*ReportEvent `json:"events"`
	CreatedAt int64          `json:"createdAt"` // unix micro
}

// ReportTaskStatus is what the task lookup endpoint returns.
type ReportTaskStatus struct {
	TaskID     string `json:"taskId"`
	Status     string `json:"status"`
	EventCount int    `json:"eventCount"`
	Error      string `json:"error,omitempty"`
}

// ReportTaskAck is the immediate response of the report submission endpoint.
type ReportTaskAck struct {
	TaskID string `json:"taskId"`
}
