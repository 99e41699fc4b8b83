package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"labtrail.dev/backend/internal/constant"
	"labtrail.dev/backend/internal/model"
	"labtrail.dev/backend/internal/model/cache"
	"labtrail.dev/backend/internal/pkg/lterr"
	"labtrail.dev/backend/internal/repo"
	"labtrail.dev/backend/internal/util"
)

type Series struct {
	LabEventRepo *repo.LabEvent
}

func NewSeries(labEventRepo *repo.LabEvent) *Series {
	return &Series{
		LabEventRepo: labEventRepo,
	}
}

// AggregateDailyMeans turns the raw analyte selection and optional day-range
// literals of a chart request into per-(analyte, day) averages. An empty
// selection is a caller error: it means no chart series was chosen at all.
// Cache: series#analytes|start|end, 5 min
func (s *Series) AggregateDailyMeans(ctx context.Context, analytes []string, startStr, endStr string) ([]*model.AnalyteDayMean, error) {
	wanted := make(map[string]struct{})
	for _, analyte := range analytes {
		name := strings.ToLower(strings.TrimSpace(analyte))
		if name == "" {
			continue
		}
		wanted[name] = struct{}{}
	}
	if len(wanted) == 0 {
		return nil, lterr.ErrInvalidReq.Msg("invalid request: `analytes` selection must not be empty")
	}

	start, err := parseDayBound(startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseDayBound(endStr)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, lterr.ErrInvalidReq.Msg("invalid request: `end` must not be before `start`")
	}

	var rows []*model.AnalyteDayMean
	err = cache.SeriesByQuery.MutexGetSet(seriesCacheKey(wanted, startStr, endStr), &rows, func() ([]*model.AnalyteDayMean, error) {
		events, err := s.LabEventRepo.GetEventsByDateRange(ctx, start, end)
		if err != nil {
			return nil, err
		}
		return util.AggregateDailyMeans(events, wanted, start, end), nil
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func parseDayBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(constant.DayFormat, s)
	if err != nil {
		return nil, lterr.ErrInvalidReq.Msg("invalid request: expect date in form of `YYYY-MM-DD`, got `%s`", s)
	}
	t = t.UTC()
	return &t, nil
}

func seriesCacheKey(wanted map[string]struct{}, startStr, endStr string) string {
	names := make([]string, 0, len(wanted))
	for name := range wanted {
		names = append(names, name)
	}
	// map iteration order is random, so sort to keep the cache key stable
	sort.Strings(names)
	return strings.Join(names, ",") + "|" + startStr + "|" + endStr
}
