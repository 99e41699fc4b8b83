package main

import (
	"labtrail.dev/backend/cmd/service"
)

// Aggregation backend for the LabTrail personal health dashboard. Turns raw
// laboratory results into query-able analyte time series and pivoted matrices.
func main() {
	service.Bootstrap()
}
