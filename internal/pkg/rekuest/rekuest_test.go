package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"labtrail.dev/backend/internal/model/types"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		violations := ValidateStruct(&types.ReportRequest{
			Source: "quest-labs",
			Events: []*types.ReportEvent{
				{Analyte: "LDL", CollectedAt: "2024-01-01T08:00:00Z", Value: null.FloatFrom(95)},
			},
		})
		assert.Nil(t, violations)
	})

	t.Run("MissingSource", func(t *testing.T) {
		violations := ValidateStruct(&types.ReportRequest{
			Events: []*types.ReportEvent{
				{Analyte: "LDL", CollectedAt: "2024-01-01", Value: null.FloatFrom(95)},
			},
		})
		assert.NotEmpty(t, violations)
		assert.Equal(t, "required", violations[0].Violation)
	})

	t.Run("EmptyEvents", func(t *testing.T) {
		violations := ValidateStruct(&types.ReportRequest{
			Source: "quest-labs",
			Events: []*types.ReportEvent{},
		})
		assert.NotEmpty(t, violations)
	})

	t.Run("DiveIntoEvents", func(t *testing.T) {
		violations := ValidateStruct(&types.ReportRequest{
			Source: "quest-labs",
			Events: []*types.ReportEvent{
				{CollectedAt: "2024-01-01"},
			},
		})
		assert.NotEmpty(t, violations)
	})
}
