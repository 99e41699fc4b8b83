package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"labtrail.dev/backend/internal/model"
)

func eventsNamed(names ...string) []*model.LabEvent {
	events := make([]*model.LabEvent, 0, len(names))
	for _, name := range names {
		events = append(events, &model.LabEvent{Analyte: name})
	}
	return events
}

func TestDistinctAnalytes(t *testing.T) {
	t.Run("DeduplicatesCaseInsensitively", func(t *testing.T) {
		got := DistinctAnalytes(eventsNamed("LDL", "ldl", "HDL", "LDL"))
		assert.Equal(t, []string{"HDL", "LDL"}, got)
	})

	t.Run("KeepsFirstEncounteredCasing", func(t *testing.T) {
		got := DistinctAnalytes(eventsNamed("ldl", "LDL"))
		assert.Equal(t, []string{"ldl"}, got)
	})

	t.Run("TrimsAndDropsEmpty", func(t *testing.T) {
		got := DistinctAnalytes(eventsNamed("  TSH  ", "", "   ", "Ferritin"))
		assert.Equal(t, []string{"Ferritin", "TSH"}, got)
	})

	t.Run("SortsCaseInsensitively", func(t *testing.T) {
		got := DistinctAnalytes(eventsNamed("b12", "ALT", "ferritin", "AST"))
		assert.Equal(t, []string{"ALT", "AST", "b12", "ferritin"}, got)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		got := DistinctAnalytes(nil)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("Idempotent", func(t *testing.T) {
		events := eventsNamed("LDL", "hdl", "ldl", "Glucose")
		first := DistinctAnalytes(events)
		second := DistinctAnalytes(events)
		assert.Equal(t, first, second)
	})
}
