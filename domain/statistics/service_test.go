package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFundStatistics(t *testing.T) {
	t.Run("active and inactive split", func(t *testing.T) {
		statuses := []StatusCount{
			{Status: "ACTIVE", Count: 12},
			{Status: "CLOSED", Count: 3},
			{Status: "SUSPENDED", Count: 1},
		}
		types := []TypeCount{
			{Name: "UCITS", Value: 10},
			{Name: "ETF", Value: 6},
		}

		stats := buildFundStatistics(statuses, types)

		assert.Equal(t, 16, stats.TotalFunds)
		assert.Equal(t, 12, stats.ActiveFunds)
		assert.Equal(t, 4, stats.InactiveFunds)
		assert.Equal(t, map[string]int{"ACTIVE": 12, "CLOSED": 3, "SUSPENDED": 1}, stats.StatusBreakdown)
		assert.Equal(t, types, stats.FundsByType)
	})

	t.Run("empty catalog yields zeroes not nils", func(t *testing.T) {
		stats := buildFundStatistics(nil, nil)

		assert.Equal(t, 0, stats.TotalFunds)
		assert.NotNil(t, stats.StatusBreakdown)
		assert.NotNil(t, stats.FundsByType)
		assert.Empty(t, stats.FundsByType)
	})
}

func TestBuildManagementStatistics(t *testing.T) {
	t.Run("counts per status", func(t *testing.T) {
		stats := buildManagementStatistics([]StatusCount{
			{Status: "ACTIVE", Count: 5},
			{Status: "SUSPENDED", Count: 2},
		})

		assert.Equal(t, 7, stats.TotalManagementEntities)
		assert.Equal(t, map[string]int{"ACTIVE": 5, "SUSPENDED": 2}, stats.StatusBreakdown)
	})

	t.Run("blank status bucketed as UNKNOWN", func(t *testing.T) {
		stats := buildManagementStatistics([]StatusCount{
			{Status: "", Count: 2},
		})

		assert.Equal(t, map[string]int{"UNKNOWN": 2}, stats.StatusBreakdown)
	})
}
