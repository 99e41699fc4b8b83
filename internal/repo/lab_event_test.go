package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utcDay(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// The pushed-down text window must keep every timestamp whose UTC day is in
// range, even when its zone offset shifts the text form onto a neighboring
// day; the aggregation pass narrows by exact UTC day afterwards.
func TestEventRangeLiterals(t *testing.T) {
	t.Run("Literals", func(t *testing.T) {
		assert.Equal(t, "2024-01-01", rangeLowerLiteral(utcDay("2024-01-02")))
		assert.Equal(t, "2024-01-04", rangeUpperLiteral(utcDay("2024-01-02")))
	})

	t.Run("NegativeOffsetStartBoundary", func(t *testing.T) {
		// UTC day 2024-01-02, text form on 2024-01-01
		text := "2024-01-01T23:30:00-05:00"
		assert.GreaterOrEqual(t, text, rangeLowerLiteral(utcDay("2024-01-02")))
	})

	t.Run("PositiveOffsetEndBoundary", func(t *testing.T) {
		// UTC day 2024-01-02, text form on 2024-01-03
		text := "2024-01-03T00:30:00+05:00"
		assert.Less(t, text, rangeUpperLiteral(utcDay("2024-01-02")))
	})

	t.Run("DateOnlyLayoutInsideWindow", func(t *testing.T) {
		text := "2024-01-02"
		assert.GreaterOrEqual(t, text, rangeLowerLiteral(utcDay("2024-01-02")))
		assert.Less(t, text, rangeUpperLiteral(utcDay("2024-01-02")))
	})
}
