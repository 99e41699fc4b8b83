package service

import (
	"context"
	"time"

	"labtrail.dev/backend/internal/model"
	"labtrail.dev/backend/internal/model/cache"
	"labtrail.dev/backend/internal/repo"
	"labtrail.dev/backend/internal/util"
)

type Pivot struct {
	LabMatrixRepo *repo.LabMatrix
}

func NewPivot(labMatrixRepo *repo.LabMatrix) *Pivot {
	return &Pivot{
		LabMatrixRepo: labMatrixRepo,
	}
}

// Cache: pivotTable, 5 min
func (s *Pivot) GetPivotTable(ctx context.Context) (*model.PivotTable, error) {
	var table *model.PivotTable
	err := cache.PivotTable.MutexGetSet(&table, func() (*model.PivotTable, error) {
		return s.calcPivotTable(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (s *Pivot) calcPivotTable(ctx context.Context) (*model.PivotTable, error) {
	rows, err := s.LabMatrixRepo.GetMatrixRows(ctx)
	if err != nil {
		return nil, err
	}
	return util.BuildPivot(rows), nil
}
