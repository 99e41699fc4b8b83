package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"labtrail.dev/backend/internal/constant"
)

// dateColumnPrefix marks the dynamically named date columns of the wide
// lab_matrix table: d_<year>_<month>_<day>.
const dateColumnPrefix = "d"

// EncodeDateColumn turns a calendar date into the wide-table column
// identifier for that date, e.g. 2024-01-15 -> d_2024_01_15.
func EncodeDateColumn(t time.Time) string {
	return fmt.Sprintf("%s_%04d_%02d_%02d", dateColumnPrefix, t.Year(), int(t.Month()), t.Day())
}

// DecodeDateColumn decodes a wide-table column identifier back into an ISO
// calendar day. The second return value reports whether the identifier is a
// date column at all; metadata columns such as "units" or "analyte" return
// ("", false) rather than an error, so callers can filter a mixed field set.
// Unpadded variants (d_2024_1_2) decode to the same day as padded ones.
func DecodeDateColumn(col string) (string, bool) {
	parts := strings.Split(col, "_")
	if len(parts) != 4 || parts[0] != dateColumnPrefix {
		return "", false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", false
	}

	// time.Date normalizes out-of-range components (e.g. Feb 30 -> Mar 1);
	// reject identifiers that do not survive the round trip.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}

	return t.Format(constant.DayFormat), true
}
