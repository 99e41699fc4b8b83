package util

import (
	"sort"
	"strings"

	"labtrail.dev/backend/internal/model"
)

// DistinctAnalytes derives the known analyte vocabulary from a raw event-log
// snapshot: names are trimmed, empties dropped, and variants that differ only
// in casing collapse into one entry keeping the casing encountered first in
// input order. The result is sorted ascending, case-insensitively.
func DistinctAnalytes(events []*model.LabEvent) []string {
	representatives := make([]string, 0)
	seen := make(map[string]struct{})

	for _, event := range events {
		name := strings.TrimSpace(event.Analyte)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		representatives = append(representatives, name)
	}

	sort.Slice(representatives, func(i, j int) bool {
		li, lj := strings.ToLower(representatives[i]), strings.ToLower(representatives[j])
		if li == lj {
			return representatives[i] < representatives[j]
		}
		return li < lj
	})

	return representatives
}
