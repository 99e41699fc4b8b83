package service

import (
	"context"
	"time"

	"labtrail.dev/backend/internal/model/cache"
	"labtrail.dev/backend/internal/repo"
	"labtrail.dev/backend/internal/util"
)

type Analyte struct {
	LabEventRepo *repo.LabEvent
}

func NewAnalyte(labEventRepo *repo.LabEvent) *Analyte {
	return &Analyte{
		LabEventRepo: labEventRepo,
	}
}

// Cache: analyteCatalog, 5 min
func (s *Analyte) ListAnalytes(ctx context.Context) ([]string, error) {
	var analytes []string
	err := cache.AnalyteCatalog.MutexGetSet(&analytes, func() ([]string, error) {
		events, err := s.LabEventRepo.GetEvents(ctx)
		if err != nil {
			return nil, err
		}
		return util.DistinctAnalytes(events), nil
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return analytes, nil
}
