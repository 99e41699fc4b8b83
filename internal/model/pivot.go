package model

import (
	"gopkg.in/guregu/null.v3"
)

// PivotRow is one analyte's dense projection onto the shared date axis.
// Cols is positionally aligned with PivotTable.Dates: len(Cols) always
// equals len(Dates), with explicit nulls for dates the analyte lacks.
type PivotRow struct {
	Analyte string       `json:"analyte"`
	Units   null.String  `json:"units"`
	RefLow  null.Float   `json:"refLow"`
	RefHigh null.Float   `json:"refHigh"`
	Cols    []null.Float `json:"cols"`
}

// PivotTable is the reconstructed dense view of the wide matrix table:
// ascending ISO dates pooled across every row, one aligned row per analyte.
type PivotTable struct {
	Dates []string    `json:"dates"`
	Rows  []*PivotRow `json:"rows"`
}

// CatalogResult is the JSON shape of the analyte catalog endpoint.
type CatalogResult struct {
	Analytes []string `json:"analytes"`
}
