package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateColumnRoundTrip(t *testing.T) {
	// a full leap year plus a boundary crossing is representative enough
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 400; d++ {
		date := start.AddDate(0, 0, d)
		col := EncodeDateColumn(date)
		day, ok := DecodeDateColumn(col)
		require.True(t, ok, "expect %s to decode", col)
		assert.Equal(t, date.Format("2006-01-02"), day)
	}
}

func TestDateColumnEncode(t *testing.T) {
	assert.Equal(t, "d_2024_01_15", EncodeDateColumn(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "d_1999_12_31", EncodeDateColumn(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestDateColumnDecodeTotality(t *testing.T) {
	tests := []struct {
		col string
		day string
		ok  bool
	}{
		{"d_2024_01_15", "2024-01-15", true},
		{"d_2024_1_2", "2024-01-02", true},
		{"units", "", false},
		{"analyte", "", false},
		{"ref_low", "", false},
		{"", "", false},
		{"d", "", false},
		{"d_2024_01", "", false},
		{"d_2024_01_15_00", "", false},
		{"x_2024_01_15", "", false},
		{"d_2024_02_30", "", false},
		{"d_2024_13_01", "", false},
		{"d_abcd_01_15", "", false},
		{"d_2024_ab_15", "", false},
		{"d_2024_01_xy", "", false},
	}

	for _, test := range tests {
		day, ok := DecodeDateColumn(test.col)
		assert.Equal(t, test.ok, ok, "column %q", test.col)
		assert.Equal(t, test.day, day, "column %q", test.col)
	}
}
