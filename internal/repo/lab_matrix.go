package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type LabMatrix struct {
	db *bun.DB
}

func NewLabMatrix(db *bun.DB) *LabMatrix {
	return &LabMatrix{db: db}
}

// GetMatrixRows returns every row of the wide matrix table as a raw column
// map, ordered by analyte ascending. The date columns of lab_matrix are
// dynamically named, so rows are scanned schema-less instead of into a
// struct; discovery of the date columns is the pivot engine's concern.
func (s *LabMatrix) GetMatrixRows(ctx context.Context) ([]map[string]any, error) {
	var rows []map[string]any
	err := s.db.NewSelect().
		Table("lab_matrix").
		Order("analyte ASC").
		Scan(ctx, &rows)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return rows, nil
}
