package util

import (
	"sort"
	"strings"
	"time"

	"github.com/ahmetb/go-linq/v3"

	"labtrail.dev/backend/internal/constant"
	"labtrail.dev/backend/internal/model"
)

// collectedAtLayouts are the timestamp shapes the heterogeneous ingestion
// sources are known to produce. Anything else marks the event unusable.
var collectedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCollectedAt parses a raw collection timestamp. The second return
// value reports whether the timestamp is usable at all.
func ParseCollectedAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range collectedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type analyteDayKey struct {
	Analyte string
	Day     string
}

type qualifiedEvent struct {
	Key analyteDayKey
	// Display is the analyte casing as originally stored; the first event of
	// a bucket in input order decides the bucket's displayed name.
	Display string
	Value   float64
}

// AggregateDailyMeans filters the event log down to the wanted analyte set
// and buckets qualifying events into per-(analyte, UTC day) arithmetic
// means. Events with a non-numeric value, an unparseable timestamp or an
// empty analyte name are silently excluded; they never abort the pass.
// The wanted set must hold lowercased names; start and end bound the event's
// UTC collection day inclusively when non-nil.
//
// The result carries no duplicate (analyte, day) pairs and is sorted by
// (analyte, day) so identical inputs always aggregate to identical outputs.
func AggregateDailyMeans(events []*model.LabEvent, wanted map[string]struct{}, start, end *time.Time) []*model.AnalyteDayMean {
	qualified := make([]*qualifiedEvent, 0, len(events))
	for _, event := range events {
		if !event.ValueNumeric.Valid {
			continue
		}
		name := strings.TrimSpace(event.Analyte)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := wanted[key]; !ok {
			continue
		}
		collectedAt, ok := ParseCollectedAt(event.CollectedAt)
		if !ok {
			continue
		}
		day := collectedAt.UTC().Truncate(time.Hour * 24)
		if start != nil && day.Before(*start) {
			continue
		}
		if end != nil && day.After(*end) {
			continue
		}
		qualified = append(qualified, &qualifiedEvent{
			Key:     analyteDayKey{Analyte: key, Day: day.Format(constant.DayFormat)},
			Display: name,
			Value:   event.ValueNumeric.Float64,
		})
	}

	var groups []linq.Group
	linq.From(qualified).
		GroupByT(
			func(event *qualifiedEvent) analyteDayKey { return event.Key },
			func(event *qualifiedEvent) *qualifiedEvent { return event }).
		ToSlice(&groups)

	results := make([]*model.AnalyteDayMean, 0, len(groups))
	for _, group := range groups {
		key := group.Key.(analyteDayKey)
		sum := 0.0
		for _, el := range group.Group {
			sum += el.(*qualifiedEvent).Value
		}
		results = append(results, &model.AnalyteDayMean{
			Analyte: group.Group[0].(*qualifiedEvent).Display,
			Day:     key.Day,
			Value:   sum / float64(len(group.Group)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		ai, aj := strings.ToLower(results[i].Analyte), strings.ToLower(results[j].Analyte)
		if ai != aj {
			return ai < aj
		}
		return results[i].Day < results[j].Day
	})

	return results
}
