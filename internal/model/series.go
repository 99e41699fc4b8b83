package model

// AnalyteDayMean is one aggregated bucket: the mean of every usable event of
// one analyte (case-insensitive identity) on one UTC calendar day. Analyte
// carries the casing of the first event encountered for the bucket.
type AnalyteDayMean struct {
	Analyte string  `json:"analyte"`
	Day     string  `json:"day"`
	Value   float64 `json:"value"`
}

// SeriesQueryResult is the JSON shape of the time-series aggregation endpoint.
type SeriesQueryResult struct {
	Rows []*AnalyteDayMean `json:"rows"`
}
