package util

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"labtrail.dev/backend/internal/model"
)

// BuildPivot reconstructs the dense pivot view from raw wide-matrix rows.
// The date axis is discovered by decoding every field name of every row and
// pooling the hits, so a date sampled for only one analyte still becomes a
// column for all of them. Each output row is projected onto that shared,
// ascending axis with explicit nulls for absent cells. Fields that are not
// date columns (analyte, units, ref bounds, anything else) are skipped
// during discovery; rows with zero date fields still appear, all-null.
func BuildPivot(rows []map[string]any) *model.PivotTable {
	dateSet := make(map[string]struct{})
	// cells maps, per input row, ISO day -> raw cell value. Decoding per row
	// also reconciles differently padded encodings of the same day: columns are
	// visited in sorted order and the first hit per day wins, so when a row
	// aliases one day under several encodings the zero-padded canonical form
	// (which sorts before any unpadded variant) decides the cell.
	cells := make([]map[string]any, len(rows))
	for i, row := range rows {
		cells[i] = make(map[string]any)
		cols := lo.Keys(row)
		sort.Strings(cols)
		for _, col := range cols {
			day, ok := DecodeDateColumn(col)
			if !ok {
				continue
			}
			dateSet[day] = struct{}{}
			if _, taken := cells[i][day]; taken {
				continue
			}
			cells[i][day] = row[col]
		}
	}

	dates := lo.Keys(dateSet)
	sort.Strings(dates)

	pivotRows := make([]*model.PivotRow, 0, len(rows))
	for i, row := range rows {
		cols := make([]null.Float, len(dates))
		for j, day := range dates {
			value, ok := cells[i][day]
			if !ok {
				continue
			}
			if f, ok := toFloat(value); ok {
				cols[j] = null.FloatFrom(f)
			}
		}
		pivotRows = append(pivotRows, &model.PivotRow{
			Analyte: toString(row["analyte"]),
			Units:   toNullString(row["units"]),
			RefLow:  toNullFloat(row["ref_low"]),
			RefHigh: toNullFloat(row["ref_high"]),
			Cols:    cols,
		})
	}

	return &model.PivotTable{
		Dates: dates,
		Rows:  pivotRows,
	}
}

// toFloat coerces the loosely typed cell values the database driver yields.
// Postgres numeric columns scan as strings or []byte depending on the path.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toNullFloat(value any) null.Float {
	if f, ok := toFloat(value); ok {
		return null.FloatFrom(f)
	}
	return null.Float{}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toNullString(value any) null.String {
	switch v := value.(type) {
	case string:
		return null.StringFrom(v)
	case []byte:
		return null.StringFrom(string(v))
	default:
		return null.String{}
	}
}
