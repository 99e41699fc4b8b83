package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestBuildPivotDensity(t *testing.T) {
	rows := []map[string]any{
		{"analyte": "LDL", "units": "mg/dL", "ref_low": 50.0, "ref_high": 130.0, "d_2024_01_01": 95.0},
		{"analyte": "HDL", "d_2024_01_02": 60.0},
	}

	got := BuildPivot(rows)

	require.Equal(t, []string{"2024-01-01", "2024-01-02"}, got.Dates)
	require.Len(t, got.Rows, 2)

	ldl := got.Rows[0]
	assert.Equal(t, "LDL", ldl.Analyte)
	assert.Equal(t, null.StringFrom("mg/dL"), ldl.Units)
	assert.Equal(t, null.FloatFrom(50), ldl.RefLow)
	assert.Equal(t, null.FloatFrom(130), ldl.RefHigh)
	assert.Equal(t, []null.Float{null.FloatFrom(95), {}}, ldl.Cols)

	hdl := got.Rows[1]
	assert.Equal(t, "HDL", hdl.Analyte)
	assert.False(t, hdl.Units.Valid)
	assert.Equal(t, []null.Float{{}, null.FloatFrom(60)}, hdl.Cols)
}

func TestBuildPivotDatesSortedChronologically(t *testing.T) {
	rows := []map[string]any{
		{"analyte": "LDL", "d_2024_02_01": 1.0, "d_2023_12_31": 2.0, "d_2024_01_15": 3.0},
	}

	got := BuildPivot(rows)

	assert.Equal(t, []string{"2023-12-31", "2024-01-15", "2024-02-01"}, got.Dates)
	assert.Equal(t, []null.Float{null.FloatFrom(2), null.FloatFrom(3), null.FloatFrom(1)}, got.Rows[0].Cols)
}

func TestBuildPivotDeterminism(t *testing.T) {
	rows := []map[string]any{
		{"analyte": "LDL", "d_2024_01_01": 95.0, "d_2024_01_05": 90.0},
		{"analyte": "HDL", "d_2024_01_03": 60.0},
		{"analyte": "TSH", "units": "mIU/L"},
	}

	first := BuildPivot(rows)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildPivot(rows))
	}
}

func TestBuildPivotAliasedEncodingsResolveDeterministically(t *testing.T) {
	// both columns decode to 2024-01-02; the padded canonical encoding must
	// decide the cell, on every run, regardless of map iteration order
	rows := []map[string]any{
		{"analyte": "LDL", "d_2024_01_02": 10.0, "d_2024_1_2": 99.0},
	}

	for i := 0; i < 50; i++ {
		got := BuildPivot(rows)
		require.Equal(t, []string{"2024-01-02"}, got.Dates)
		assert.Equal(t, []null.Float{null.FloatFrom(10)}, got.Rows[0].Cols)
	}
}

func TestBuildPivotIgnoresNonDateColumns(t *testing.T) {
	rows := []map[string]any{
		{"analyte": "LDL", "units": "mg/dL", "ref_low": 50.0, "ref_high": 130.0, "id": 3, "created_at": "2024-01-01"},
	}

	got := BuildPivot(rows)

	assert.Empty(t, got.Dates)
	require.Len(t, got.Rows, 1)
	assert.Empty(t, got.Rows[0].Cols)
}

func TestBuildPivotRowWithoutDatesStillDense(t *testing.T) {
	rows := []map[string]any{
		{"analyte": "LDL", "d_2024_01_01": 95.0},
		{"analyte": "TSH"},
	}

	got := BuildPivot(rows)

	require.Len(t, got.Rows, 2)
	assert.Equal(t, []null.Float{null.FloatFrom(95)}, got.Rows[0].Cols)
	assert.Equal(t, []null.Float{{}}, got.Rows[1].Cols)
}

func TestBuildPivotNullPassthrough(t *testing.T) {
	rows := []map[string]any{
		{"analyte": "LDL", "d_2024_01_01": nil, "d_2024_01_02": 90.0},
	}

	got := BuildPivot(rows)

	assert.Equal(t, []null.Float{{}, null.FloatFrom(90)}, got.Rows[0].Cols)
}

func TestBuildPivotCoercesDriverTypes(t *testing.T) {
	// pg numeric columns surface as strings or []byte depending on the scan path
	rows := []map[string]any{
		{"analyte": "LDL", "d_2024_01_01": "95.5", "d_2024_01_02": []byte("90"), "d_2024_01_03": int64(88)},
	}

	got := BuildPivot(rows)

	assert.Equal(t, []null.Float{null.FloatFrom(95.5), null.FloatFrom(90), null.FloatFrom(88)}, got.Rows[0].Cols)
}

func TestBuildPivotEmptyInput(t *testing.T) {
	got := BuildPivot(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got.Dates)
	assert.Empty(t, got.Rows)
	assert.NotNil(t, got.Dates)
	assert.NotNil(t, got.Rows)
}
