package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// LabEvent is one observed measurement in the narrow event log: one row per
// (analyte, collection timestamp, value). CollectedAt is kept as the raw text
// the source supplied; heterogeneous ingestion sources mean it may not parse,
// and the aggregation engine, not the store, decides whether a row is usable.
type LabEvent struct {
	bun.BaseModel `bun:"lab_events,alias:le"`

	EventID      int        `bun:",pk,autoincrement" json:"id"`
	Analyte      string     `json:"analyte"`
	CollectedAt  string     `json:"collectedAt"`
	ValueNumeric null.Float `json:"value"`
	Source       string     `json:"source"`
	CreatedAt    *time.Time `json:"createdAt"`
}
