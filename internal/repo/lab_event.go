package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"labtrail.dev/backend/internal/constant"
	"labtrail.dev/backend/internal/model"
)

type LabEvent struct {
	db *bun.DB
}

func NewLabEvent(db *bun.DB) *LabEvent {
	return &LabEvent{db: db}
}

// GetEvents returns the full event-log snapshot, ordered by collection
// timestamp ascending.
func (s *LabEvent) GetEvents(ctx context.Context) ([]*model.LabEvent, error) {
	var events []*model.LabEvent
	err := s.db.NewSelect().
		Model(&events).
		Order("collected_at ASC").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventsByDateRange returns events whose collection timestamp falls within
// the given bounds, both ends inclusive, excluding rows with a null numeric
// value. Either bound may be nil to leave that side open.
func (s *LabEvent) GetEventsByDateRange(ctx context.Context, start, end *time.Time) ([]*model.LabEvent, error) {
	var events []*model.LabEvent
	query := s.db.NewSelect().
		Model(&events).
		Where("value_numeric IS NOT NULL")
	// collected_at holds ISO-shaped text, so plain day literals compare
	// lexicographically in chronological order against every stored layout.
	// The window is widened by one day on each side: an offset-bearing
	// timestamp can land on a neighboring UTC day, and the aggregation pass
	// re-filters by exact UTC day anyway.
	if start != nil {
		query = query.Where("collected_at >= ?", rangeLowerLiteral(*start))
	}
	if end != nil {
		query = query.Where("collected_at < ?", rangeUpperLiteral(*end))
	}
	err := query.Order("collected_at ASC").Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return events, nil
}

// rangeLowerLiteral is the inclusive text lower bound for a UTC day range
// start: one day early, since a negative-offset timestamp (e.g. -05:00) has
// its text form on the day before its UTC day.
func rangeLowerLiteral(start time.Time) string {
	return start.AddDate(0, 0, -1).Format(constant.DayFormat)
}

// rangeUpperLiteral is the exclusive text upper bound for a UTC day range
// end: two days past it, since a positive-offset timestamp (e.g. +05:00) has
// its text form on the day after its UTC day.
func rangeUpperLiteral(end time.Time) string {
	return end.AddDate(0, 0, 2).Format(constant.DayFormat)
}

func (s *LabEvent) BatchSaveEvents(ctx context.Context, tx bun.Tx, events []*model.LabEvent) error {
	if len(events) == 0 {
		return nil
	}
	_, err := tx.NewInsert().Model(&events).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}
