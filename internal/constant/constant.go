package constant

const (
	// DayFormat is the ISO calendar day format every aggregation output uses.
	DayFormat = "2006-01-02"

	// ReportSubject is the NATS subject lab report ingestion tasks are published to.
	ReportSubject = "REPORT.INGEST"

	// ReportStream is the NATS JetStream stream name backing ReportSubject.
	ReportStream = "labtrail-reports"

	// ReportQueue is the queue group name report workers subscribe with.
	ReportQueue = "labtrail-reports"
)

const (
	TaskStatusPending = "pending"
	TaskStatusDone    = "done"
	TaskStatusFailed  = "failed"
)
